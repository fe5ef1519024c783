package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
	"ancestor-server/pkg/dungeon"
	"ancestor-server/pkg/logger"
	"ancestor-server/pkg/rng"
	"ancestor-server/pkg/utils"
)

// Session - одна партия одного игрока: лист персонажа, текущая
// комната и все флаги прохождения. Вся случайность партии идет
// через ее Rng, поэтому одинаковый токен дает одинаковое подземелье.
type Session struct {
	Token string
	Seed  int64
	Rng   *rng.Service

	Sheet  *domain.PlayerSheet
	Player *domain.Entity
	Layout *dungeon.RoomLayout

	Floor  int
	Room   int
	Secret bool

	// KeySpawned - ключ десятой комнаты уже появился на пьедестале.
	KeySpawned bool

	// Drops - этажные флаги сундуков со снаряжением.
	Drops domain.FloorDrops

	// PlayerSlow - следующая фаза врагов двойная (лед, тяжелый каст).
	PlayerSlow bool

	GameOver bool
	GameWon  bool

	Tick int

	// Буферы на одну рассылку: очищаются после BuildState.
	Entries []LogEntry
	Effects []domain.Effect
}

// LogEntry - одна строка игрового лога сессии.
type LogEntry struct {
	Text      string
	Type      string
	Timestamp int64
}

// NewSession создает партию: зерно выводится из токена клиента,
// чтобы переподключение давало то же подземелье.
func NewSession(token string, masterSeed int64) (*Session, error) {
	return NewSessionFromSeed(token, masterSeed+int64(utils.StringToSeed(token)))
}

// NewSessionFromSeed создает партию с готовым зерном. Так запускается
// воспроизведение записей: файл хранит итоговое зерно, не мастер.
func NewSessionFromSeed(token string, seed int64) (*Session, error) {
	r := rng.NewService(seed)

	s := &Session{
		Token: token,
		Seed:  seed,
		Rng:   r,
		Sheet: domain.NewPlayerSheet(),
		Floor: 1,
		Room:  1,
		// Первый этаж скуп на оружие: из сундуков оно не падает.
		Drops: domain.FloorDrops{WeaponDropped: true},
	}

	layout, err := dungeon.Generate(dungeon.Params{Floor: 1, Room: 1}, r)
	if err != nil {
		return nil, fmt.Errorf("generate first room: %w", err)
	}
	s.Layout = layout
	s.Player = dungeon.CreatePlayer(
		domain.EntityID(utils.DeterministicID(r, "p_")),
		layout.PlayerSpawn,
	)

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"token":     token,
	}).Info("Session created")

	return s, nil
}

// Context собирает контекст хендлера из текущего состояния сессии.
func (s *Session) Context() handlers.Context {
	return handlers.Context{
		Sheet:  s.Sheet,
		Player: s.Player,
		Layout: s.Layout,
		Drops:  &s.Drops,
		Rng:    s.Rng,
	}
}

// Finished - партия закончена и команды больше не принимаются.
func (s *Session) Finished() bool {
	return s.GameOver || s.GameWon
}

// Apply разруливает исход хендлера: логи, эффекты, скриптовые
// события, переходы между комнатами и фазу врагов.
func (s *Session) Apply(res handlers.Result) {
	if res.Msg != "" {
		s.AddLog(res.Msg, res.MsgType)
	}
	s.Effects = append(s.Effects, res.Effects...)

	s.spawnReinforcements(res.Effects)

	if res.WallBreak != nil {
		s.checkWallBreakEvents(*res.WallBreak)
	}

	if res.Won {
		s.finishWon()
		return
	}
	if res.Died {
		s.finishLost()
		return
	}

	if res.Transition != handlers.TransitionNone {
		s.advanceRoom(res.Transition == handlers.TransitionSecret)
		s.Tick++
		return
	}

	if !res.TurnSpent {
		return
	}

	if res.Slow {
		s.PlayerSlow = true
	}

	s.endPlayerTurn()
}

// endPlayerTurn - все, что происходит между действиями игрока:
// выдыхается зелье силы, ходят враги, появляется ключ.
func (s *Session) endPlayerTurn() {
	s.Tick++
	s.Sheet.LeakTempStr()

	s.enemyPhase()
	if s.PlayerSlow && !s.Finished() {
		// Замедленный игрок теряет следующий ход: враги ходят еще раз.
		s.PlayerSlow = false
		s.Sheet.LeakTempStr()
		s.enemyPhase()
	}

	if s.Finished() {
		return
	}

	s.checkKeySpawn()
}

// checkKeySpawn ставит ключ на пьедестал зачищенной десятой комнаты.
func (s *Session) checkKeySpawn() {
	if s.KeySpawned || s.Secret || s.Room%10 != 0 || s.Floor == domain.FinalFloor {
		return
	}
	if s.Layout.KeyPos == nil || s.Layout.AliveEnemies() > 0 {
		return
	}

	s.KeySpawned = true
	s.Layout.Add(dungeon.NewPickup(domain.PickupKey, *s.Layout.KeyPos, s.Rng))
	s.Effects = append(s.Effects, domain.Effect{
		Kind: domain.EffectKeySpawn,
		Pos:  *s.Layout.KeyPos,
	})
	s.AddLog("На пьедестале появляется ключ!", "INFO")
}

// checkWallBreakEvents - скриптовые события на разрушении стен.
// В пятой комнате этажа под последней стеной прячется тайный ход.
func (s *Session) checkWallBreakEvents(pos domain.Position) {
	if s.Secret || s.Room%5 != 0 || s.Room%10 == 0 {
		return
	}
	if s.Layout.AliveWalls() > 0 {
		return
	}

	s.Layout.Add(dungeon.NewExit(domain.ExitKindSecret, pos, s.Rng))
	s.Effects = append(s.Effects, domain.Effect{
		Kind: domain.EffectSecretExit,
		Pos:  pos,
	})
	s.AddLog("За обломками стены открывается тайный ход!", "INFO")

	// Рядом с ходом прячется бонусный тайник.
	for _, d := range []domain.Position{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}} {
		c := pos.Add(d.X, d.Y)
		if !s.Layout.InBounds(c) || c == s.Player.Pos || s.Layout.BlockerAt(c) != nil {
			continue
		}
		s.Layout.Add(dungeon.NewContainer(c, s.Rng))
		s.Effects = append(s.Effects, domain.Effect{
			Kind: domain.EffectBonusChest,
			Pos:  c,
		})
		break
	}
}

// spawnReinforcements отрабатывает токены подкреплений босса:
// на каждом пороге фазы вокруг него встают враги этажа.
func (s *Session) spawnReinforcements(effects []domain.Effect) {
	for _, ef := range effects {
		if ef.Kind != domain.EffectReinforcement {
			continue
		}

		roster := dungeon.RosterFor(s.Floor)
		spawned := 0
		for _, d := range []domain.Position{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}} {
			if spawned >= ef.Value {
				break
			}
			pos := ef.Pos.Add(d.X, d.Y)
			if !s.Layout.InBounds(pos) || pos == s.Player.Pos || s.Layout.BlockerAt(pos) != nil {
				continue
			}
			t := roster[s.Rng.Range(0, len(roster))]
			s.Layout.Add(t.Spawn(pos, s.Rng))
			spawned++
		}

		if spawned > 0 {
			s.AddLog("Босс призывает подкрепления!", "COMBAT")
		}
	}
}

// advanceRoom переводит игрока в следующую комнату. Тайный ход уводит
// в бонусную комнату, ее коридор возвращает на основной маршрут.
func (s *Session) advanceRoom(intoSecret bool) {
	s.Sheet.DrainTempStr()
	s.PlayerSlow = false

	if intoSecret {
		s.Secret = true
	} else {
		s.Secret = false
		if s.Room == domain.RoomsPerFloor {
			s.Floor++
			s.Room = 1
			s.Drops.ResetForNextFloor()
			s.AddLog(fmt.Sprintf("Этаж %d. Холод становится глубже.", s.Floor), "INFO")
		} else {
			s.Room++
		}
		s.KeySpawned = false
	}

	prev := s.Player.Pos
	layout, err := dungeon.Generate(dungeon.Params{
		Floor:   s.Floor,
		Room:    s.Room,
		Secret:  s.Secret,
		PrevPos: &prev,
	}, s.Rng)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"floor":     s.Floor,
			"room":      s.Room,
		}).WithError(err).Error("Room generation failed")
		return
	}

	s.Layout = layout
	s.Player.Pos = layout.PlayerSpawn

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"token":     s.Token,
		"floor":     s.Floor,
		"room":      s.Room,
		"secret":    s.Secret,
	}).Info("Room entered")
}

func (s *Session) finishWon() {
	s.GameWon = true
	s.Effects = append(s.Effects, domain.Effect{Kind: domain.EffectGameWon})
	s.AddLog("Прародитель повержен. Проклятие рода снято!", "INFO")
}

func (s *Session) finishLost() {
	s.GameOver = true
	s.Sheet.Dead = true
	s.Effects = append(s.Effects, domain.Effect{Kind: domain.EffectGameOver})
	s.AddLog(fmt.Sprintf("Вы пали на этаже %d. Род прервался.", s.Floor), "INFO")
}

// AddLog добавляет строку в буфер лога текущей рассылки.
func (s *Session) AddLog(text, logType string) {
	if logType == "" {
		logType = "INFO"
	}
	s.Entries = append(s.Entries, LogEntry{
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// FlushOutput отдает накопленные логи и эффекты и очищает буферы.
func (s *Session) FlushOutput() ([]LogEntry, []domain.Effect) {
	entries, effects := s.Entries, s.Effects
	s.Entries = nil
	s.Effects = nil
	return entries, effects
}
