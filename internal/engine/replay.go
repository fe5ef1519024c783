package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/infrastructure/storage"
	"ancestor-server/pkg/logger"
)

// Запись и воспроизведение партий. Поток команд плюс зерно полностью
// определяют партию, поэтому файл записи крошечный.

// recordCommand дописывает команду в запись партии.
func (s *GameService) recordCommand(sess *Session, cmd domain.InternalCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[sess.Token]
	if !ok {
		rec = &domain.ReplaySession{
			Token:     sess.Token,
			Seed:      sess.Seed,
			Timestamp: time.Now().Unix(),
		}
		s.records[sess.Token] = rec
	}
	rec.RecordCommand(sess.Tick, cmd)
}

// SaveReplays сохраняет записи всех партий в каталог. Вызывается
// на graceful shutdown.
func (s *GameService) SaveReplays(dir string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return
	}
	svc := storage.NewReplayService(dir)
	for token, rec := range s.records {
		if err := svc.Save(rec); err != nil {
			logger.Log.WithField("token", token).WithError(err).Error("Replay save failed")
			continue
		}
		logger.Log.WithFields(logrus.Fields{
			"token":   token,
			"actions": len(rec.Actions),
		}).Info("Replay saved")
	}
}

// Simulate воспроизводит файл записи: создает сессию с записанным
// зерном и прогоняет команды через те же хендлеры. Возвращает
// итоговую сессию для осмотра.
func (s *GameService) Simulate(path string) (*Session, error) {
	svc := storage.NewReplayService(".")
	rec, err := svc.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load replay: %w", err)
	}

	sess, err := NewSessionFromSeed(rec.Token, rec.Seed)
	if err != nil {
		return nil, err
	}

	for i, act := range rec.Actions {
		if sess.Finished() {
			logger.Log.WithField("applied", i).Warn("Replay has actions past the end of the game")
			break
		}
		handler, ok := s.handlers[act.Action]
		if !ok {
			continue
		}
		res := handler(sess.Context(), act.Command(rec.Token))
		sess.Apply(res)
		sess.FlushOutput()
	}

	logger.Log.WithFields(logrus.Fields{
		"token":    rec.Token,
		"actions":  len(rec.Actions),
		"floor":    sess.Floor,
		"room":     sess.Room,
		"hp":       sess.Sheet.HP,
		"gameOver": sess.GameOver,
		"gameWon":  sess.GameWon,
	}).Info("Replay simulated")

	return sess, nil
}
