package kv

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"lintang/wayfinder/domain"
	"lintang/wayfinder/pkg/datastructure"

	"github.com/cockroachdb/pebble"
	"github.com/kelindar/binary"
)

// maxCachedRegions maksimal region graph yang disimpan, sisanya di-evict
// yang paling lama.
const maxCachedRegions = 5

const regionIndexKey = "wayfinder/regions"

type KVDB struct {
	db *pebble.DB
}

func NewKVDB(db *pebble.DB) *KVDB {
	return &KVDB{db}
}

func (k *KVDB) Close() error {
	return k.db.Close()
}

// RegionKey hash unik per region name.
func RegionKey(place string) string {
	sum := md5.Sum([]byte(strings.ToLower(place)))
	return hex.EncodeToString(sum[:])[:10]
}

type regionMeta struct {
	Hash    string
	Place   string
	SavedAt int64
}

// GetRegionGraph load cached road network graph untuk 1 region. Return
// domain.ErrNotFound kalau region belum pernah di-cache.
func (k *KVDB) GetRegionGraph(place string) (*datastructure.Graph, error) {
	val, closer, err := k.db.Get([]byte(RegionKey(place)))
	if err == pebble.ErrNotFound {
		return nil, domain.WrapErrorf(err, domain.ErrNotFound, "region %s not cached", place)
	}
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	defer closer.Close()

	bb, err := Decompress(val)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	blob, err := Decode(bb)
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}

	g := datastructure.NewGraph()
	for _, n := range blob.Nodes {
		g.AddNode(n)
	}
	for _, e := range blob.Edges {
		g.AddEdge(e)
	}
	return g, nil
}

// SaveRegionGraph simpan graph 1 region (zstd compressed), terus evict
// cached region paling lama kalau sudah lebih dari maxCachedRegions.
func (k *KVDB) SaveRegionGraph(place string, g *datastructure.Graph) error {
	blob := GraphBlob{
		Nodes:   g.Nodes(),
		SavedAt: time.Now().Unix(),
	}
	for _, e := range g.Edges() {
		blob.Edges = append(blob.Edges, *e)
	}

	bb, err := Encode(blob)
	if err != nil {
		return domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	compressed, err := Compress(bb)
	if err != nil {
		return domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	if err := k.db.Set([]byte(RegionKey(place)), compressed, pebble.Sync); err != nil {
		return domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}

	return k.touchRegion(place)
}

func (k *KVDB) touchRegion(place string) error {
	regions, err := k.loadRegionIndex()
	if err != nil {
		return err
	}

	hash := RegionKey(place)
	kept := regions[:0]
	for _, r := range regions {
		if r.Hash != hash {
			kept = append(kept, r)
		}
	}
	kept = append(kept, regionMeta{Hash: hash, Place: place, SavedAt: time.Now().Unix()})

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].SavedAt < kept[j].SavedAt
	})

	// evict oldest regions
	for len(kept) > maxCachedRegions {
		oldest := kept[0]
		kept = kept[1:]
		if err := k.db.Delete([]byte(oldest.Hash), pebble.Sync); err != nil {
			return domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
		}
	}

	encoded, err := binary.Marshal(&kept)
	if err != nil {
		return domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	return k.db.Set([]byte(regionIndexKey), encoded, pebble.Sync)
}

func (k *KVDB) loadRegionIndex() ([]regionMeta, error) {
	val, closer, err := k.db.Get([]byte(regionIndexKey))
	if err == pebble.ErrNotFound {
		return []regionMeta{}, nil
	}
	if err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	defer closer.Close()

	var regions []regionMeta
	if err := binary.Unmarshal(val, &regions); err != nil {
		return nil, domain.WrapErrorf(err, domain.ErrInternalServerError, domain.MessageInternalServerError)
	}
	return regions, nil
}
