package renderer

// LayerConfig controls which layers are drawn. Layers are visible unless
// hidden, either one by one or through HideAll.
type LayerConfig struct {
	visible    map[string]bool
	hiddenRest bool
}

// NewLayerConfig creates a configuration with every layer visible
func NewLayerConfig() *LayerConfig {
	return &LayerConfig{visible: make(map[string]bool)}
}

// SetVisible sets the visibility of a specific layer
func (lc *LayerConfig) SetVisible(layer string, visible bool) {
	lc.visible[layer] = visible
}

// Toggle flips a layer and returns its new state
func (lc *LayerConfig) Toggle(layer string) bool {
	v := !lc.IsVisible(layer)
	lc.SetVisible(layer, v)
	return v
}

// IsVisible reports whether layer should be drawn. A nil config shows everything.
func (lc *LayerConfig) IsVisible(layer string) bool {
	if lc == nil {
		return true
	}
	if visible, ok := lc.visible[layer]; ok {
		return visible
	}
	return !lc.hiddenRest
}

// HideAll hides every layer not explicitly shown afterwards
func (lc *LayerConfig) HideAll() {
	lc.visible = make(map[string]bool)
	lc.hiddenRest = true
}

// ShowAll makes every layer visible again
func (lc *LayerConfig) ShowAll() {
	lc.visible = make(map[string]bool)
	lc.hiddenRest = false
}

// ShowOnly shows only the specified layers
func (lc *LayerConfig) ShowOnly(layers ...string) {
	lc.HideAll()
	for _, layer := range layers {
		lc.SetVisible(layer, true)
	}
}
