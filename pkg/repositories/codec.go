package repositories

import (
	"fmt"
	"sync"

	"github.com/cbodonnell/moralmaze/pkg/repositories/models"
	"github.com/klauspost/compress/zstd"
)

var (
	encoderOnce sync.Once
	encoder     *zstd.Encoder
	decoderOnce sync.Once
	decoder     *zstd.Decoder
)

func zstdEncoder() *zstd.Encoder {
	encoderOnce.Do(func() {
		encoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return encoder
}

func zstdDecoder() *zstd.Decoder {
	decoderOnce.Do(func() {
		decoder, _ = zstd.NewReader(nil)
	})
	return decoder
}

// marshalBlob encodes a snapshot as zstd-compressed JSON for the SQL stores.
func marshalBlob(s *models.Snapshot) ([]byte, error) {
	data, err := models.Encode(s)
	if err != nil {
		return nil, err
	}
	return zstdEncoder().EncodeAll(data, nil), nil
}

func unmarshalBlob(blob []byte) (*models.Snapshot, error) {
	data, err := zstdDecoder().DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot: %v", err)
	}
	return models.Decode(data)
}
