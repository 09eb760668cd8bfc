// Package bus implementa un canal publish-subscribe en memoria para un
// proceso único: la escritura de settings publica una notificación y
// cualquier número de suscriptores re-lee el estado actual al recibirla.
package bus

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultBufferSize = 16

// TopicSettingsUpdated notificación de cambio del registro de settings.
const TopicSettingsUpdated = "settings.updated"

// Event es una notificación publicada en un tópico.
type Event struct {
	ID      string          `json:"id"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload,omitempty"`
	At      time.Time       `json:"at"`
}

// Bus fan-out por tópico sobre canales con buffer. Seguro para uso
// concurrente. Un suscriptor lento pierde eventos en lugar de bloquear a
// los publicadores: las notificaciones son señales de "re-lee el estado",
// no un log de cambios.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]chan Event
	closed bool
}

// New crea un bus vacío.
func New() *Bus {
	return &Bus{subs: make(map[string][]chan Event)}
}

// Publish serializa el payload y lo entrega a todos los suscriptores del
// tópico. Nunca bloquea: si el buffer de un suscriptor está lleno, ese
// suscriptor pierde el evento.
func (b *Bus) Publish(topic string, payload any) error {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		raw = data
	}

	ev := Event{
		ID:      uuid.NewString(),
		Topic:   topic,
		Payload: raw,
		At:      time.Now().UTC(),
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil
	}
	for _, ch := range b.subs[topic] {
		select {
		case ch <- ev:
		default:
		}
	}
	return nil
}

// Subscribe registra un suscriptor del tópico. Devuelve el canal de
// eventos y la función de baja; el canal se cierra al darse de baja o al
// cerrar el bus.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, defaultBufferSize)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			list := b.subs[topic]
			for i, c := range list {
				if c == ch {
					b.subs[topic] = append(list[:i], list[i+1:]...)
					close(ch)
					return
				}
			}
		})
	}
	return ch, cancel
}

// Close cierra el bus y todos los canales de suscriptores.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for _, list := range b.subs {
		for _, ch := range list {
			close(ch)
		}
	}
	b.subs = make(map[string][]chan Event)
}
