package repository

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/model"
)

// encodeSettings lays out the settings as a varint length-prefixed UTF-8
// alphabet followed by the length as a little-endian int32.
func encodeSettings(s model.Settings) []byte {
	buf := make([]byte, 0, binary.MaxVarintLen32+len(s.Alphabet)+4)
	buf = binary.AppendUvarint(buf, uint64(len(s.Alphabet)))
	buf = append(buf, s.Alphabet...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(s.Length)))
	return buf
}

func decodeSettings(data []byte) (model.Settings, error) {
	n, read := binary.Uvarint(data)
	if read <= 0 || read > binary.MaxVarintLen32 {
		return model.Settings{}, fmt.Errorf("%w: bad alphabet length prefix", ErrCorruptSettings)
	}
	data = data[read:]

	if n > uint64(len(data)) {
		return model.Settings{}, fmt.Errorf("%w: alphabet truncated", ErrCorruptSettings)
	}
	alphabet := data[:n]
	if !utf8.Valid(alphabet) {
		return model.Settings{}, fmt.Errorf("%w: alphabet is not valid UTF-8", ErrCorruptSettings)
	}
	data = data[n:]

	if len(data) != 4 {
		return model.Settings{}, fmt.Errorf("%w: expected 4 length bytes, found %d", ErrCorruptSettings, len(data))
	}

	return model.Settings{
		Alphabet: string(alphabet),
		Length:   int(int32(binary.LittleEndian.Uint32(data))),
	}, nil
}
