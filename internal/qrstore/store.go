package qrstore

import (
	"context"
	"encoding/gob"
	"errors"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"emvstash/internal/config"
	"emvstash/internal/qrcodec"
	"emvstash/internal/schema"
)

type GUIDType string

var ErrPayloadNotFound = errors.New("payload not found")

// Store holds decoded payload trees by guid. Every tree is an immutable
// snapshot: edits run the pure mutators plus a checksum recompute and swap
// the new snapshot in, so readers never observe a half-applied edit.
type Store struct {
	mu    sync.RWMutex
	trees map[GUIDType][]qrcodec.Record

	// decodeSFG collapses concurrent decodes of an identical payload into
	// one parse; the resulting tree is shareable because it is never
	// mutated in place.
	decodeSFG singleflight.Group

	reg  *schema.Registry
	conf *config.Config

	sugar *zap.SugaredLogger
}

func NewStore(reg *schema.Registry, conf *config.Config, logger *zap.Logger) (*Store, error) {
	s := &Store{
		trees: make(map[GUIDType][]qrcodec.Record),
		reg:   reg,
		conf:  conf,
		sugar: logger.Sugar(),
	}
	if conf.Restore {
		if err := s.loadFromDisk(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}
	return s, nil
}

// Decode parses payload and stores the tree under a fresh guid.
func (s *Store) Decode(payload string) (GUIDType, error) {
	res, err, shared := s.decodeSFG.Do(payload, func() (interface{}, error) {
		return qrcodec.Decode(payload, s.reg)
	})
	if err != nil {
		return "", err
	}
	if shared {
		s.sugar.Debugw("decode deduplicated", "len", len(payload))
	}

	guid := GUIDType(uuid.New().String())
	s.mu.Lock()
	s.trees[guid] = res.([]qrcodec.Record)
	s.mu.Unlock()

	s.sugar.Debugw("decode", "guid", guid)
	return guid, nil
}

// Get returns the current snapshot. Callers must not modify it.
func (s *Store) Get(guid GUIDType) ([]qrcodec.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tree, ok := s.trees[guid]
	if !ok {
		return nil, ErrPayloadNotFound
	}
	return tree, nil
}

func (s *Store) Encode(guid GUIDType) (string, error) {
	tree, err := s.Get(guid)
	if err != nil {
		return "", err
	}
	return qrcodec.Encode(tree), nil
}

func (s *Store) Validate(guid GUIDType) error {
	tree, err := s.Get(guid)
	if err != nil {
		return err
	}
	return qrcodec.Validate(tree)
}

// Recompute refreshes the checksum record and returns its new value,
// empty when the payload carries no checksum record.
func (s *Store) Recompute(guid GUIDType) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.trees[guid]
	if !ok {
		return "", ErrPayloadNotFound
	}
	tree = qrcodec.Recompute(tree)
	s.trees[guid] = tree

	for _, r := range tree {
		if r.ID == qrcodec.ChecksumID {
			return r.Value, nil
		}
	}
	return "", nil
}

func (s *Store) SetValue(guid GUIDType, path []string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.trees[guid]
	if !ok {
		return ErrPayloadNotFound
	}
	s.trees[guid] = qrcodec.Recompute(qrcodec.SetValue(tree, path, value))
	s.sugar.Debugw("set value", "guid", guid, "path", path)
	return nil
}

func (s *Store) InsertField(guid GUIDType, parentPath []string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.trees[guid]
	if !ok {
		return ErrPayloadNotFound
	}
	node, found := s.reg.Lookup(id, parentPath)
	if !found {
		node = nil
	}
	edited, err := qrcodec.InsertField(tree, parentPath, id, node)
	if err != nil {
		return err
	}
	s.trees[guid] = qrcodec.Recompute(edited)
	s.sugar.Debugw("insert field", "guid", guid, "parent", parentPath, "id", id)
	return nil
}

func (s *Store) DeleteField(guid GUIDType, path []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.trees[guid]
	if !ok {
		return ErrPayloadNotFound
	}
	s.trees[guid] = qrcodec.Recompute(qrcodec.DeleteField(tree, path))
	s.sugar.Debugw("delete field", "guid", guid, "path", path)
	return nil
}

// AllowedFields lists the ids an editor may add under parentPath.
func (s *Store) AllowedFields(parentPath []string) []string {
	return s.reg.AllowedFieldIDs(parentPath)
}

func (s *Store) Remove(guid GUIDType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.trees[guid]; !ok {
		return ErrPayloadNotFound
	}
	delete(s.trees, guid)
	s.sugar.Debugw("remove", "guid", guid)
	return nil
}

// SaveToDisk writes a gob snapshot of all payload trees.
func (s *Store) SaveToDisk(ctx context.Context) error {
	m := s.copyData()

	file, err := os.OpenFile(s.conf.StoreFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	defer file.Close()

	return gob.NewEncoder(file).Encode(m)
}

func (s *Store) loadFromDisk() error {
	file, err := os.Open(s.conf.StoreFile)
	if err != nil {
		return err
	}
	defer file.Close()

	m := make(map[GUIDType][]qrcodec.Record)
	if err := gob.NewDecoder(file).Decode(&m); err != nil {
		return err
	}

	s.mu.Lock()
	s.trees = m
	s.mu.Unlock()

	s.sugar.Infow("restored from disk", "payloads", len(m))
	return nil
}

func (s *Store) copyData() map[GUIDType][]qrcodec.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ret := make(map[GUIDType][]qrcodec.Record, len(s.trees))
	for guid, tree := range s.trees {
		ret[guid] = tree
	}
	return ret
}
