package messages

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/klauspost/compress/zstd"
)

// SerializeRound encodes a round record as zstd-compressed JSON.
func SerializeRound(r *types.RoundRecord) ([]byte, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal round record: %v", err)
	}
	return compress(b)
}

// DeserializeRound decodes a record written by SerializeRound.
func DeserializeRound(data []byte) (*types.RoundRecord, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, err
	}
	r := &types.RoundRecord{}
	if err := json.Unmarshal(b, r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round record: %v", err)
	}
	return r, nil
}

// SerializeStandings encodes final standings as zstd-compressed JSON.
func SerializeStandings(standings []types.Standing) ([]byte, error) {
	b, err := json.Marshal(standings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal standings: %v", err)
	}
	return compress(b)
}

// DeserializeStandings decodes standings written by SerializeStandings.
func DeserializeStandings(data []byte) ([]types.Standing, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, err
	}
	var standings []types.Standing
	if err := json.Unmarshal(b, &standings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal standings: %v", err)
	}
	return standings, nil
}

func compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress record: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}
	return compressed.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed record: %v", err)
	}
	return b, nil
}
