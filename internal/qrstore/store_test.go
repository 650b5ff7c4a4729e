package qrstore

import (
	"context"
	"log"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"emvstash/internal/config"
	"emvstash/internal/qrcodec"
	"emvstash/internal/schema"
)

const vietqrPayload = "00020101021138570010A00000072701270006970436011300110123456780208QRIBFTTA53037045802VN620901051234563049ABE"

var (
	once   sync.Once
	logger *zap.Logger
)

func getTestLogger() *zap.Logger {
	once.Do(func() {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
	})

	return logger
}

func newTestStore(t *testing.T, conf *config.Config) *Store {
	t.Helper()
	if conf == nil {
		conf = &config.Config{}
	}
	s, err := NewStore(schema.NewRegistry(), conf, getTestLogger())
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func TestStore_DecodeGetEncode(t *testing.T) {
	s := newTestStore(t, nil)

	guid, err := s.Decode(vietqrPayload)
	require.NoError(t, err)
	require.NotEmpty(t, guid)

	tree, err := s.Get(guid)
	require.NoError(t, err)
	require.Len(t, tree, 7)

	out, err := s.Encode(guid)
	require.NoError(t, err)
	require.Equal(t, vietqrPayload, out)

	require.NoError(t, s.Validate(guid))

	_, err = s.Decode("00A101")
	require.ErrorIs(t, err, qrcodec.ErrInvalidLength)

	_, err = s.Get("no-such-guid")
	require.ErrorIs(t, err, ErrPayloadNotFound)
}

func TestStore_EditsKeepChecksumValid(t *testing.T) {
	s := newTestStore(t, nil)

	guid, err := s.Decode(vietqrPayload)
	require.NoError(t, err)

	require.NoError(t, s.SetValue(guid, []string{"38", "01", "01"}, "0999999999"))
	require.NoError(t, s.Validate(guid))

	require.NoError(t, s.InsertField(guid, nil, "59"))
	require.NoError(t, s.SetValue(guid, []string{"59"}, "NGUYEN VAN A"))
	require.NoError(t, s.Validate(guid))

	require.NoError(t, s.DeleteField(guid, []string{"62"}))
	require.NoError(t, s.Validate(guid))

	require.ErrorIs(t, s.InsertField(guid, nil, "99"), qrcodec.ErrSchemaNotFound)
	require.ErrorIs(t, s.InsertField(guid, []string{"00"}, "01"), qrcodec.ErrParentNotStructured)

	// edits on a removed payload
	require.NoError(t, s.Remove(guid))
	require.ErrorIs(t, s.SetValue(guid, []string{"54"}, "1"), ErrPayloadNotFound)
}

func TestStore_Recompute(t *testing.T) {
	s := newTestStore(t, nil)

	placeholder := vietqrPayload[:len(vietqrPayload)-4] + "0000"
	guid, err := s.Decode(placeholder)
	require.NoError(t, err)
	require.Error(t, s.Validate(guid))

	cs, err := s.Recompute(guid)
	require.NoError(t, err)
	require.Equal(t, "9ABE", cs)
	require.NoError(t, s.Validate(guid))
}

func TestStore_AllowedFields(t *testing.T) {
	s := newTestStore(t, nil)

	require.Contains(t, s.AllowedFields(nil), "63")
	require.Contains(t, s.AllowedFields([]string{"62"}), "05")
	require.Empty(t, s.AllowedFields([]string{"53"}))
}

func TestStore_InGoroutines(t *testing.T) {
	s := newTestStore(t, nil)

	goroutinesCount := 100
	var wg sync.WaitGroup
	wg.Add(goroutinesCount * 2)

	funcDecodeEditEncode := func(i int) {
		defer wg.Done()

		guid, err := s.Decode(vietqrPayload)
		require.NoError(t, err)

		amount := strconv.Itoa(10000 + i)
		require.NoError(t, s.InsertField(guid, nil, "54"))
		require.NoError(t, s.SetValue(guid, []string{"54"}, amount))
		require.NoError(t, s.Validate(guid))

		tree, err := s.Get(guid)
		require.NoError(t, err)
		for _, r := range tree {
			if r.ID == "54" {
				require.Equal(t, amount, r.Value)
			}
		}
	}

	funcDecodeRemove := func(i int) {
		defer wg.Done()

		guid, err := s.Decode(vietqrPayload)
		require.NoError(t, err)

		out, err := s.Encode(guid)
		require.NoError(t, err)
		require.Equal(t, vietqrPayload, out)

		require.NoError(t, s.Remove(guid))
		_, err = s.Get(guid)
		require.ErrorIs(t, err, ErrPayloadNotFound)
	}

	for i := 0; i < goroutinesCount; i++ {
		index := i
		go funcDecodeEditEncode(index)
		go funcDecodeRemove(index)
	}

	wg.Wait()
}

func TestStore_SaveToDisk_LoadFromDisk(t *testing.T) {
	conf := &config.Config{
		StoreFile: filepath.Join(t.TempDir(), "qrstash.data"),
	}
	sTo := newTestStore(t, conf)

	guid, err := sTo.Decode(vietqrPayload)
	require.NoError(t, err)
	require.NoError(t, sTo.SetValue(guid, []string{"62", "01"}, "67890"))

	require.NoError(t, sTo.SaveToDisk(context.Background()))

	conf.Restore = true
	sFrom := newTestStore(t, conf)

	want, err := sTo.Encode(guid)
	require.NoError(t, err)
	got, err := sFrom.Encode(guid)
	require.NoError(t, err)
	require.Equal(t, want, got)
	require.NoError(t, sFrom.Validate(guid))
}
