package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
	"ancestor-server/internal/engine/handlers/actions"
	"ancestor-server/internal/network"
	"ancestor-server/pkg/api"
	"ancestor-server/pkg/logger"
)

// ErrUnknownAction возвращается на команду с неизвестным действием.
var ErrUnknownAction = errors.New("unknown action")

// GameService держит все партии и крутит единственную горутину
// игрового цикла. Весь мутабельный игровой стейт трогает только она,
// поэтому в сессиях нет ни одного мьютекса.
type GameService struct {
	cfg Config

	// mu защищает мапы от read-only заглядываний debug-эндпоинтов.
	// Пишет в них только горутина игрового цикла.
	mu       sync.RWMutex
	sessions map[string]*Session
	lastSeen map[string]time.Time
	records  map[string]*domain.ReplaySession

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) *GameService {
	s := &GameService{
		cfg:         cfg,
		sessions:    make(map[string]*Session),
		lastSeen:    make(map[string]time.Time),
		records:     make(map[string]*domain.ReplaySession),
		CommandChan: make(chan domain.InternalCommand, cfg.Tuning.CommandBuffer),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = actions.HandleInit
	s.handlers[domain.ActionMove] = actions.HandleMove
	s.handlers[domain.ActionUse] = actions.HandleUse
	s.handlers[domain.ActionEquip] = actions.HandleEquip
	s.handlers[domain.ActionLevelUp] = actions.HandleLevelUp
	s.handlers[domain.ActionCast] = actions.HandleCast
	s.handlers[domain.ActionWait] = actions.HandleWait
}

func (s *GameService) Start() {
	go s.RunLoop()
}

// ProcessCommand принимает команду от внешнего мира (WebSocket),
// валидирует пейлоад и кладет ее в канал игрового цикла.
func (s *GameService) ProcessCommand(external api.ClientCommand) error {
	if external.Token == "" {
		return fmt.Errorf("token is required")
	}

	action := domain.ParseAction(external.Action)
	if action == domain.ActionUnknown {
		return fmt.Errorf("%w: %s", ErrUnknownAction, external.Action)
	}

	cmd := domain.InternalCommand{Token: external.Token, Action: action}

	switch action {
	case domain.ActionMove:
		p, err := unpack[api.DirectionPayload](external.Payload)
		if err != nil {
			return err
		}
		cmd.DX, cmd.DY = p.Dx, p.Dy

	case domain.ActionUse, domain.ActionLevelUp:
		p, err := unpack[api.SlotPayload](external.Payload)
		if err != nil {
			return err
		}
		cmd.Slot = p.Slot

	case domain.ActionEquip:
		p, err := unpack[api.EquipPayload](external.Payload)
		if err != nil {
			return err
		}
		if p.Armor > 0 {
			cmd.Slot, cmd.ArmorSlot = p.Armor, true
		} else {
			cmd.Slot = p.Weapon
		}

	case domain.ActionCast:
		p, err := unpack[api.PositionPayload](external.Payload)
		if err != nil {
			return err
		}
		cmd.Target = domain.Position{X: p.X, Y: p.Y}
	}

	select {
	case s.CommandChan <- cmd:
		return nil
	default:
		return fmt.Errorf("server is busy")
	}
}

// unpack распаковывает пейлоад и, если DTO реализует api.Validator,
// автоматически валидирует его.
func unpack[T any](raw json.RawMessage) (T, error) {
	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return payload, fmt.Errorf("invalid payload format: %w", err)
	}
	if v, ok := any(payload).(api.Validator); ok {
		if err := v.Validate(); err != nil {
			return payload, fmt.Errorf("validation failed: %w", err)
		}
	}
	return payload, nil
}

// --- GAME LOOP ---

// RunLoop - единственный потребитель CommandChan. Раз в минуту
// между командами выселяются простаивающие партии.
func (s *GameService) RunLoop() {
	logger.Log.Info("Game loop started")

	evict := time.NewTicker(time.Minute)
	defer evict.Stop()

	for {
		select {
		case cmd := <-s.CommandChan:
			s.dispatch(cmd)
		case <-evict.C:
			s.evictStale()
		}
	}
}

func (s *GameService) dispatch(cmd domain.InternalCommand) {
	s.mu.RLock()
	sess, ok := s.sessions[cmd.Token]
	s.mu.RUnlock()

	if !ok || (sess.Finished() && cmd.Action == domain.ActionInit) {
		if cmd.Action != domain.ActionInit {
			logger.Log.WithField("token", cmd.Token).Warn("Command for unknown session dropped")
			return
		}
		created, err := s.createSession(cmd.Token)
		if err != nil {
			logger.Log.WithError(err).Error("Session creation failed")
			return
		}
		sess = created
	}

	s.mu.Lock()
	s.lastSeen[cmd.Token] = time.Now()
	s.mu.Unlock()

	if sess.Finished() {
		// Доигранная партия только отдает финальный стейт.
		s.publish(sess)
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	s.recordCommand(sess, cmd)
	res := handler(sess.Context(), cmd)
	sess.Apply(res)
	s.publish(sess)
}

func (s *GameService) createSession(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, replacing := s.sessions[token]; !replacing && len(s.sessions) >= s.cfg.Tuning.MaxSessions {
		return nil, fmt.Errorf("session limit reached (%d)", s.cfg.Tuning.MaxSessions)
	}
	sess, err := NewSession(token, s.cfg.Seed)
	if err != nil {
		return nil, err
	}
	s.sessions[token] = sess
	// Новая партия - новая запись.
	delete(s.records, token)
	return sess, nil
}

// evictStale выселяет партии, по которым давно не было команд.
func (s *GameService) evictStale() {
	ttl := time.Duration(s.cfg.Tuning.SessionTTL)
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, seen := range s.lastSeen {
		if now.Sub(seen) <= ttl {
			continue
		}
		delete(s.sessions, token)
		delete(s.lastSeen, token)
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"token":     token,
		}).Info("Stale session evicted")
	}
}

func (s *GameService) publish(sess *Session) {
	state := BuildState(sess)
	s.Hub.SendTo(sess.Token, *state)
}

// --- DEBUG ---

// SessionSummary - сводка по партии для debug-эндпоинтов.
type SessionSummary struct {
	Token    string `json:"token"`
	Floor    int    `json:"floor"`
	Room     int    `json:"room"`
	Secret   bool   `json:"secret"`
	Tick     int    `json:"tick"`
	HP       int    `json:"hp"`
	GameOver bool   `json:"gameOver"`
	GameWon  bool   `json:"gameWon"`
}

// SessionCount возвращает число активных партий.
func (s *GameService) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// SessionSummaries возвращает сводки всех партий. Читает игровой
// стейт без остановки цикла: цифры могут быть на ход позади.
func (s *GameService) SessionSummaries() []SessionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SessionSummary, 0, len(s.sessions))
	for token, sess := range s.sessions {
		out = append(out, SessionSummary{
			Token:    token,
			Floor:    sess.Floor,
			Room:     sess.Room,
			Secret:   sess.Secret,
			Tick:     sess.Tick,
			HP:       sess.Sheet.HP,
			GameOver: sess.GameOver,
			GameWon:  sess.GameWon,
		})
	}
	return out
}
