package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dashboard-api/internal/client"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/settings"
	"github.com/jhoicas/dashboard-api/internal/i18n"
	"github.com/jhoicas/dashboard-api/pkg/bus"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// settingsServer sirve GET /api/settings con el registro indicado.
func settingsServer(t *testing.T, cfg entity.Settings) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/settings" || r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"settings": cfg})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newSync(t *testing.T, baseURL string, b *bus.Bus) (*client.Synchronizer, string) {
	t.Helper()
	cacheFile := filepath.Join(t.TempDir(), "settings.json")
	return client.New(client.Options{
		BaseURL:   baseURL,
		CacheFile: cacheFile,
		Bus:       b,
	}), cacheFile
}

// ──────────────────────────────────────────────────────────────────────────────
// Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_AdoptaCopiaRemota(t *testing.T) {
	remote := settings.Default()
	remote.Language = "ru"
	remote.Currency = "RUB"
	srv := settingsServer(t, remote)

	s, cacheFile := newSync(t, srv.URL, nil)
	require.Equal(t, client.StateLoading, s.State())

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, client.StateSynced, s.State())
	assert.Equal(t, "ru", s.Settings().Language)

	// La caché y el archivo de tema quedan escritos.
	raw, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"language": "ru"`)

	theme, err := os.ReadFile(filepath.Join(filepath.Dir(cacheFile), "theme"))
	require.NoError(t, err)
	assert.Equal(t, remote.Theme, string(theme))
}

func TestLoad_SinAPIQuedaEnFallback(t *testing.T) {
	// URL a un puerto cerrado: la petición falla de inmediato.
	s, _ := newSync(t, "http://127.0.0.1:1", nil)

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, client.StateFallback, s.State())
	assert.Equal(t, settings.Default(), s.Settings(), "sin caché ni API rigen los defaults")
}

func TestLoad_CachePreviaSobreviveALaCaidaDeLaAPI(t *testing.T) {
	s, cacheFile := newSync(t, "http://127.0.0.1:1", nil)

	cached := settings.Default()
	cached.Language = "ky"
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cacheFile, raw, 0o644))

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, client.StateFallback, s.State())
	assert.Equal(t, "ky", s.Settings().Language)
}

func TestLoad_CacheCorruptaEquivaleADefaults(t *testing.T) {
	s, cacheFile := newSync(t, "http://127.0.0.1:1", nil)
	require.NoError(t, os.WriteFile(cacheFile, []byte("{corrupto"), 0o644))

	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, settings.Default(), s.Settings())
}

func TestLoad_RespuestaRemotaSeSanea(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// language fuera de dominio y firstName válido.
		_, _ = w.Write([]byte(`{"settings":{"language":"fr","firstName":"Aigerim"}}`))
	}))
	t.Cleanup(srv.Close)

	s, _ := newSync(t, srv.URL, nil)
	require.NoError(t, s.Load(context.Background()))

	got := s.Settings()
	assert.Equal(t, "Aigerim", got.FirstName, "campo válido se conserva")
	assert.Equal(t, "en", got.Language, "campo inválido cae al default")
}

// ──────────────────────────────────────────────────────────────────────────────
// SavePreferences
// ──────────────────────────────────────────────────────────────────────────────

func TestSavePreferences_EscrituraDirectaYNotificacion(t *testing.T) {
	b := bus.New()
	t.Cleanup(b.Close)
	events, cancel := b.Subscribe(bus.TopicSettingsUpdated)
	t.Cleanup(cancel)

	s, cacheFile := newSync(t, "http://127.0.0.1:1", b)

	next := settings.Default()
	next.Language = "ru"
	next.Currency = "RUB"
	next.Theme = "neón" // fuera de dominio: debe normalizarse
	require.NoError(t, s.SavePreferences(next))

	got := s.Settings()
	assert.Equal(t, "ru", got.Language)
	assert.Equal(t, "system", got.Theme, "tema inválido cae al default")

	raw, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"currency": "RUB"`)

	select {
	case ev := <-events:
		assert.Equal(t, bus.TopicSettingsUpdated, ev.Topic)
	case <-time.After(time.Second):
		t.Fatal("no llegó la notificación del bus")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Watch
// ──────────────────────────────────────────────────────────────────────────────

func TestWatch_EscrituraExternaDeLaCache(t *testing.T) {
	s, cacheFile := newSync(t, "http://127.0.0.1:1", nil)
	require.NoError(t, os.MkdirAll(filepath.Dir(cacheFile), 0o755))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Watch(ctx)
	}()
	// Deja que el watcher registre el directorio.
	time.Sleep(100 * time.Millisecond)

	external := settings.Default()
	external.Language = "ky"
	raw, err := json.Marshal(external)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cacheFile, raw, 0o644))

	require.Eventually(t, func() bool {
		return s.Settings().Language == "ky"
	}, 2*time.Second, 20*time.Millisecond, "la escritura externa debe adoptarse")

	s.Stop()
	<-done
}

func TestWatch_SenalDelBus(t *testing.T) {
	b := bus.New()
	t.Cleanup(b.Close)
	s, cacheFile := newSync(t, "http://127.0.0.1:1", b)

	// La caché ya contiene el estado nuevo; el bus solo avisa "re-lee".
	cached := settings.Default()
	cached.Currency = "KGS"
	raw, err := json.Marshal(cached)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(cacheFile), 0o755))
	require.NoError(t, os.WriteFile(cacheFile, raw, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Watch(ctx)
	}()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, b.Publish(bus.TopicSettingsUpdated, cached))

	require.Eventually(t, func() bool {
		return s.Settings().Currency == "KGS"
	}, 2*time.Second, 20*time.Millisecond)

	s.Stop()
	<-done
}

// ──────────────────────────────────────────────────────────────────────────────
// Formateadores
// ──────────────────────────────────────────────────────────────────────────────

func TestFormateadores_SiguenAlIdiomaVigente(t *testing.T) {
	s, _ := newSync(t, "http://127.0.0.1:1", nil)

	// Defaults: inglés, dólares.
	usd := s.FormatCurrency(decimal.NewFromInt(100))
	assert.Contains(t, usd, "$")
	assert.Equal(t, "450,000", s.FormatNumber(450000))

	next := settings.Default()
	next.Language = "ru"
	next.Currency = "RUB"
	require.NoError(t, s.SavePreferences(next))

	rub := s.FormatCurrency(decimal.NewFromInt(100))
	if !assert.True(t, containsAny(rub, "₽", "RUB"), "precio en rublos, obtuvo %q", rub) {
		t.Logf("render: %s", rub)
	}
}

func TestCopyYLabels_SiguenAlIdiomaVigente(t *testing.T) {
	s, _ := newSync(t, "http://127.0.0.1:1", nil)

	assert.Equal(t, "Products", s.T("products.title"))
	assert.Equal(t, "In Stock", s.ProductStatusLabel(entity.StatusInStock))

	next := settings.Default()
	next.Language = "ru"
	require.NoError(t, s.SavePreferences(next))

	assert.Equal(t, "Товары", s.T("products.title"))
	assert.Equal(t, "В наличии", s.ProductStatusLabel(entity.StatusInStock))
	assert.Equal(t, "3 Pro пользователя", s.CountLabel(i18n.CountProUsers, 3))
	assert.Equal(t, "Gadget-X", s.ProductCategoryLabel("Gadget-X"),
		"categoría sin traducción cae a la clave cruda")
}

func TestFormatDate_FechaSoloDiaComoUTC(t *testing.T) {
	s, _ := newSync(t, "http://127.0.0.1:1", nil)

	assert.Equal(t, "Jan 23, 2024", s.FormatDate("2024-01-23", i18n.DateMedium))
	assert.Equal(t, "no-es-fecha", s.FormatDate("no-es-fecha", i18n.DateMedium),
		"valor no parseable se devuelve crudo")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
