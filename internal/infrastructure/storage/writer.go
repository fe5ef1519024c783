package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ancestor-server/internal/domain"
)

const (
	MagicHeader string = `ATRP` // 4 байта
	Version1    uint32 = 1
)

// ReplayFileHeader - точное представление заголовка файла в памяти.
// binary.Write пишет его целиком: тут нет слайсов и строк, только
// массивы и числа. Токен переменной длины идет сразу за заголовком.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	ActionCount int32   // 4 байта
	TokenLen    uint8   // 1 байт
	_           [3]byte // выравнивание до 32
}

// ActionRecord - одна команда в файле, фиксированные 12 байт.
type ActionRecord struct {
	Tick       int32 // 4
	ActionType uint8 // 1
	DX, DY     int8  // 2
	ArmorSlot  uint8 // 1
	Slot       int16 // 2
	TargetX    int8  // 1
	TargetY    int8  // 1
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

func (s *ReplayService) Save(session *domain.ReplaySession) error {
	filename := fmt.Sprintf("replay_%s_%d.atrp", session.Token, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, session)
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	tokenBytes := []byte(s.Token)
	if len(tokenBytes) > 255 {
		return fmt.Errorf("token too long: %d", len(tokenBytes))
	}

	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		ActionCount: int32(len(s.Actions)),
		TokenLen:    uint8(len(tokenBytes)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(tokenBytes); err != nil {
		return err
	}

	for _, act := range s.Actions {
		rec := ActionRecord{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			DX:         int8(act.DX),
			DY:         int8(act.DY),
			Slot:       int16(act.Slot),
			TargetX:    int8(act.Target.X),
			TargetY:    int8(act.Target.Y),
		}
		if act.ArmorSlot {
			rec.ArmorSlot = 1
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}

	return nil
}
