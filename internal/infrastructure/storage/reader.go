package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"ancestor-server/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	tokenBuf := make([]byte, header.TokenLen)
	if _, err := io.ReadFull(r, tokenBuf); err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	session := &domain.ReplaySession{
		Token:     string(tokenBuf),
		Seed:      header.Seed,
		Timestamp: header.Timestamp,
		Actions:   make([]domain.ReplayAction, header.ActionCount),
	}

	for i := 0; i < int(header.ActionCount); i++ {
		var rec ActionRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, err
		}
		session.Actions[i] = domain.ReplayAction{
			Tick:      int(rec.Tick),
			Action:    domain.ActionType(rec.ActionType),
			DX:        int(rec.DX),
			DY:        int(rec.DY),
			Slot:      int(rec.Slot),
			Target:    domain.Position{X: int(rec.TargetX), Y: int(rec.TargetY)},
			ArmorSlot: rec.ArmorSlot == 1,
		}
	}

	return session, nil
}
