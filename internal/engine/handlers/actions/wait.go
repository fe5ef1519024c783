package actions

import (
	"ancestor-server/internal/domain"
	"ancestor-server/internal/engine/handlers"
)

// HandleWait пропускает ход. Враги свою фазу получают.
func HandleWait(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	return handlers.Result{
		Msg:       "Вы выжидаете.",
		MsgType:   "INFO",
		TurnSpent: true,
	}
}

// HandleInit ничего не меняет: сервис сам создает сессию по токену,
// хендлер лишь возвращает приветствие для лога.
func HandleInit(ctx handlers.Context, cmd domain.InternalCommand) handlers.Result {
	return handlers.Result{
		Msg:     "Добро пожаловать в Сказание Предков.",
		MsgType: "INFO",
	}
}
