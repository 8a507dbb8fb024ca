//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

// CachedToolpath keeps up to cacheDepth generated layers, so a toolpath
// walked more than once (emit, then preview) is only generated once.
type CachedToolpath struct {
	Toolpath

	cacheDepth int
	layerCache map[int]Layer
}

// NewCachedToolpath wraps toolpath; a cacheDepth of 0 disables caching.
func NewCachedToolpath(toolpath Toolpath, cacheDepth int) (ct *CachedToolpath) {
	ct = &CachedToolpath{
		Toolpath:   toolpath,
		layerCache: make(map[int]Layer, cacheDepth),
		cacheDepth: cacheDepth,
	}
	return
}

// Layer returns the cached layer, generating it on a miss. When full, an
// arbitrary entry is evicted.
func (ct *CachedToolpath) Layer(index int) (layer Layer) {
	layer, found := ct.layerCache[index]

	if !found {
		if len(ct.layerCache) >= ct.cacheDepth {
			for key := range ct.layerCache {
				delete(ct.layerCache, key)
				break
			}
		}

		layer = ct.Toolpath.Layer(index)

		if ct.cacheDepth > 0 {
			ct.layerCache[index] = layer
		}
	}

	return
}
