package quarx

import (
	"fmt"
	"path/filepath"
)

// NullContentType marks an asset whose content type is detected on delivery.
const NullContentType = "null"

// ModuleQuery is the query string flagging module assets.
const ModuleQuery = "isModule=true"

// Asset returns the encrypted URL of a public asset. When fullURL is false
// it returns the local filesystem path of the asset instead.
func (s *Service) Asset(path, contentType string, fullURL bool) (string, error) {
	if !fullURL {
		return s.assets.Path(path)
	}

	token, err := s.assetTokens(path, contentType)
	if err != nil {
		return "", err
	}
	return s.routeURL("asset/" + token), nil
}

// ModuleAsset returns the encrypted URL of an asset shipped inside a module.
func (s *Service) ModuleAsset(module, path, contentType string) (string, error) {
	dir, err := s.modules.ModuleDir(module)
	if err != nil {
		return "", err
	}

	token, err := s.assetTokens(filepath.Join(dir, "Assets", path), contentType)
	if err != nil {
		return "", err
	}
	return s.routeURL("asset/" + token + "/?" + ModuleQuery), nil
}

func (s *Service) assetTokens(path, contentType string) (string, error) {
	if contentType == "" {
		contentType = NullContentType
	}

	encPath, err := s.crypto.Encrypt(path)
	if err != nil {
		return "", fmt.Errorf("encrypt asset path: %w", err)
	}
	encType, err := s.crypto.Encrypt(contentType)
	if err != nil {
		return "", fmt.Errorf("encrypt content type: %w", err)
	}
	return encPath + "/" + encType, nil
}
