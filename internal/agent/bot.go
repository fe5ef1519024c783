package agent

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine"
	"ancestor-server/pkg/api"
	"ancestor-server/pkg/logger"
)

// Bot - безголовый клиент для нагрузочных прогонов и smoke-тестов.
// Он подключается к движку так же, как обычный игрок: регистрируется
// в хабе, получает кадры состояния и отвечает командами. Никакого
// доступа к внутренностям сессии у него нет, только DTO.
//
// Тактика нарочно примитивная: пить зелье при низком здоровье,
// идти к выходу, бить все, что стоит на пути.
type Bot struct {
	Token   string
	Service *engine.GameService
	Inbox   chan api.ServerResponse
}

func NewBot(token string, service *engine.GameService) *Bot {
	logger.Log.WithField("token", token).Info("Creating bot agent")
	return &Bot{
		Token:   token,
		Service: service,
		Inbox:   service.Hub.Register(token),
	}
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.Token, b.Inbox)

	b.sendInit()

	for state := range b.Inbox {
		if state.GameOver || state.GameWon {
			logger.Log.WithFields(logrus.Fields{
				"token":    b.Token,
				"floor":    state.Floor,
				"room":     state.Room,
				"gameWon":  state.GameWon,
				"gameOver": state.GameOver,
			}).Info("Bot run finished")
			return
		}
		if !state.PlayerTurn {
			continue
		}
		b.makeMove(state)
	}
}

// makeMove - мозг бота: решение по одному кадру состояния.
func (b *Bot) makeMove(state api.ServerResponse) {
	if state.Sheet == nil {
		b.sendWait()
		return
	}

	// При просевшем здоровье сначала аптечка.
	if state.Sheet.HP*2 < state.Sheet.MaxHP &&
		len(state.Sheet.Inventory) > domain.SlotDrinks &&
		state.Sheet.Inventory[domain.SlotDrinks] > 0 {
		b.sendUse(domain.SlotDrinks)
		return
	}

	me, exit := b.findLandmarks(state)
	if me == nil || exit == nil {
		// Выхода нет (финальная комната): идем к боссу.
		if me != nil {
			if boss := findByType(state, domain.EntityTypeBoss); boss != nil {
				b.sendMove(stepToward(me, boss))
				return
			}
		}
		b.sendWait()
		return
	}

	b.sendMove(stepToward(me, exit))
}

// findLandmarks ищет в кадре себя и выход.
func (b *Bot) findLandmarks(state api.ServerResponse) (me, exit *api.EntityView) {
	for i := range state.Entities {
		ev := &state.Entities[i]
		switch {
		case ev.ID == state.MyEntityID:
			me = ev
		case ev.Type == domain.EntityTypeExit:
			exit = ev
		}
	}
	return me, exit
}

func findByType(state api.ServerResponse, entType string) *api.EntityView {
	for i := range state.Entities {
		if state.Entities[i].Type == entType {
			return &state.Entities[i]
		}
	}
	return nil
}

// stepToward - один шаг по одной оси в сторону цели. Чему-то
// застрявшему на пути достанется этот же шаг как удар.
func stepToward(me, target *api.EntityView) (int, int) {
	dx := domain.Sign(target.Pos.X - me.Pos.X)
	dy := domain.Sign(target.Pos.Y - me.Pos.Y)
	if dx != 0 {
		return dx, 0
	}
	return 0, dy
}

// --- Хелперы для отправки команд ---

func (b *Bot) sendCommand(action domain.ActionType, payload interface{}) {
	cmd := api.ClientCommand{
		Action: action.String(),
		Token:  b.Token,
	}
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			logger.Log.WithField("token", b.Token).WithError(err).Error("Bot payload marshal failed")
			return
		}
		cmd.Payload = payloadBytes
	}
	if err := b.Service.ProcessCommand(cmd); err != nil {
		logger.Log.WithField("token", b.Token).WithError(err).Warn("Bot command rejected")
	}
}

func (b *Bot) sendInit() {
	b.sendCommand(domain.ActionInit, nil)
}

func (b *Bot) sendMove(dx, dy int) {
	if dx == 0 && dy == 0 {
		b.sendWait()
		return
	}
	b.sendCommand(domain.ActionMove, api.DirectionPayload{Dx: dx, Dy: dy})
}

func (b *Bot) sendUse(slot int) {
	b.sendCommand(domain.ActionUse, api.SlotPayload{Slot: slot})
}

func (b *Bot) sendWait() {
	b.sendCommand(domain.ActionWait, nil)
}
