// assets.go - In-memory store for uploaded cover art.
package server

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	"github.com/MegumiinUwU/Bakuretsu/pkg/card"
)

// assetRefPrefix marks cover references that resolve against the
// asset store instead of the filesystem or network.
const assetRefPrefix = "asset:"

type asset struct {
	Name string
	Data []byte
	Mime string
}

type assetStore struct {
	mu     sync.RWMutex
	assets map[string]*asset
}

func newAssetStore() *assetStore {
	return &assetStore{assets: make(map[string]*asset)}
}

func (st *assetStore) add(name string, data []byte, mimeType string) string {
	id := randomID()
	st.mu.Lock()
	st.assets[id] = &asset{Name: name, Data: data, Mime: mimeType}
	st.mu.Unlock()
	return id
}

func (st *assetStore) get(id string) (*asset, bool) {
	st.mu.RLock()
	a, ok := st.assets[id]
	st.mu.RUnlock()
	return a, ok
}

func (st *assetStore) remove(id string) {
	st.mu.Lock()
	delete(st.assets, id)
	st.mu.Unlock()
}

func (st *assetStore) list() []gin.H {
	st.mu.RLock()
	defer st.mu.RUnlock()
	result := make([]gin.H, 0, len(st.assets))
	for id, a := range st.assets {
		result = append(result, gin.H{
			"id":   id,
			"name": a.Name,
			"mime": a.Mime,
			"size": len(a.Data),
		})
	}
	return result
}

func randomID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// assetSource resolves "asset:ID" cover references against the store
// and hands everything else to the wrapped source.
type assetSource struct {
	store *assetStore
	next  card.ImageSource
}

var _ card.ImageSource = assetSource{}

func (s assetSource) Load(ref string) (image.Image, error) {
	if id, ok := strings.CutPrefix(ref, assetRefPrefix); ok {
		a, ok := s.store.get(id)
		if !ok {
			return nil, fmt.Errorf("unknown asset %q", id)
		}
		img, err := imaging.Decode(bytes.NewReader(a.Data))
		if err != nil {
			return nil, fmt.Errorf("decoding asset %s: %w", id, err)
		}
		return img, nil
	}
	if s.next == nil {
		return nil, fmt.Errorf("no image source for %q", ref)
	}
	return s.next.Load(ref)
}
