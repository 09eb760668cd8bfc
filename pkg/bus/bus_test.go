package bus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/pkg/bus"
)

func recibir(t *testing.T, ch <-chan bus.Event) bus.Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no llegó el evento esperado")
		return bus.Event{}
	}
}

func TestBus_PublicaASuscriptores(t *testing.T) {
	b := bus.New()
	defer b.Close()

	ch1, cancel1 := b.Subscribe(bus.TopicSettingsUpdated)
	defer cancel1()
	ch2, cancel2 := b.Subscribe(bus.TopicSettingsUpdated)
	defer cancel2()

	require.NoError(t, b.Publish(bus.TopicSettingsUpdated, map[string]string{"language": "ru"}))

	ev1 := recibir(t, ch1)
	ev2 := recibir(t, ch2)

	assert.Equal(t, bus.TopicSettingsUpdated, ev1.Topic)
	assert.NotEmpty(t, ev1.ID)
	assert.JSONEq(t, `{"language":"ru"}`, string(ev1.Payload))
	// Ambos suscriptores reciben la misma notificación.
	assert.Equal(t, ev1.ID, ev2.ID)
}

func TestBus_TopicosIndependientes(t *testing.T) {
	b := bus.New()
	defer b.Close()

	ch, cancel := b.Subscribe("otro.topico")
	defer cancel()

	require.NoError(t, b.Publish(bus.TopicSettingsUpdated, nil))

	select {
	case <-ch:
		t.Fatal("el suscriptor de otro tópico no debe recibir el evento")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_CancelCierraElCanal(t *testing.T) {
	b := bus.New()
	defer b.Close()

	ch, cancel := b.Subscribe(bus.TopicSettingsUpdated)
	cancel()

	_, abierto := <-ch
	assert.False(t, abierto)

	// Publicar después de la baja no entra en pánico.
	require.NoError(t, b.Publish(bus.TopicSettingsUpdated, nil))
}

func TestBus_SuscriptorLentoNoBloquea(t *testing.T) {
	b := bus.New()
	defer b.Close()

	_, cancel := b.Subscribe(bus.TopicSettingsUpdated)
	defer cancel()

	// Muchos más eventos que el buffer: Publish no debe bloquear.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			_ = b.Publish(bus.TopicSettingsUpdated, nil)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish bloqueó con un suscriptor lento")
	}
}

func TestBus_CloseEsIdempotente(t *testing.T) {
	b := bus.New()
	ch, cancel := b.Subscribe(bus.TopicSettingsUpdated)

	b.Close()
	b.Close()
	cancel() // baja tras el cierre tampoco entra en pánico

	_, abierto := <-ch
	assert.False(t, abierto)
}
