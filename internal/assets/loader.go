package assets

// AssetLoader defines the contract for loading card templates.
// Implementations may load from embedded assets or a directory on disk.
type AssetLoader interface {
	// LoadTemplate loads one template of a set by name (without .tmpl extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if set or name contain invalid characters.
	LoadTemplate(set, name string) (string, error)
}
