package network

import (
	"sync"

	"ancestor-server/pkg/api"
)

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Подписчик - токен сессии; у каждой партии один клиент.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: токен сессии -> личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для токена. Старое соединение с тем
// же токеном закрывается: побеждает последний подключившийся.
func (b *Broadcaster) Register(token string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[token]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[token] = ch
	return ch
}

// Unregister удаляет подписчика. Канал сверяется: отвал старого
// соединения не должен закрыть канал пришедшего на смену.
func (b *Broadcaster) Unregister(token string, ch chan api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[token]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, token)
	}
}

// SendTo отправляет сообщение конкретному токену (Unicast).
func (b *Broadcaster) SendTo(token string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[token]; ok {
		select {
		case ch <- msg:
		default:
			// Канал переполнен: клиент не вычитывает, кадр теряется.
		}
	}
}

// Broadcast отправляет всем (служебные объявления).
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, слушает ли кто-то токен.
func (b *Broadcaster) HasSubscriber(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[token]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
