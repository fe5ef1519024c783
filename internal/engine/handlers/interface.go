package handlers

import (
	"ancestor-server/internal/domain"
	"ancestor-server/pkg/dungeon"
	"ancestor-server/pkg/rng"
)

// Context передает хендлеру состояние текущей комнаты и листа игрока.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Sheet  *domain.PlayerSheet
	Player *domain.Entity
	Layout *dungeon.RoomLayout
	Drops  *domain.FloorDrops
	Rng    *rng.Service
}

// Переходы между комнатами, о которых хендлер сообщает движку.
const (
	TransitionNone   = ""
	TransitionNext   = "NEXT"
	TransitionSecret = "SECRET"
)

// Result - исход выполнения команды. Хендлер НЕ трогает сессию
// напрямую: он мутирует комнату и лист, а все остальное (переходы,
// фазу врагов, терминальные флаги) разруливает движок по этим полям.
type Result struct {
	Msg     string // текст лога
	MsgType string // тип лога (INFO, COMBAT, ERROR)

	// TurnSpent=true - действие состоялось и враги получают фазу.
	// Отказы (уперся в рамку, нечего надеть) ход не тратят.
	TurnSpent bool

	// Slow=true - действие стоило двух ходов (лед, тяжелый каст).
	Slow bool

	// Died и Won - терминальные исходы, замеченные хендлером.
	Died bool
	Won  bool

	// Transition - запрошенный переход: TransitionNext или TransitionSecret.
	Transition string

	// WallBreak - позиция только что разрушенной внутренней стены.
	// Движок сверяет ее со скриптовыми событиями комнаты.
	WallBreak *domain.Position

	Effects []domain.Effect
}

// HandlerFunc - это контракт для любой команды (MOVE, USE, etc).
type HandlerFunc func(ctx Context, cmd domain.InternalCommand) Result

// Reject - вспомогательный отказ: ход не потрачен, клиенту уходит
// токен отклонения с текстом причины.
func Reject(msg string) Result {
	return Result{
		Msg:     msg,
		MsgType: "ERROR",
		Effects: []domain.Effect{{Kind: domain.EffectRejected, Text: msg}},
	}
}
