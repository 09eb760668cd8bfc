// Package client implementa el sincronizador de settings del lado
// consumidor: mantiene una copia local en disco, la reconcilia con la API
// y expone formateadores ya configurados para el idioma y moneda activos.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/settings"
	"github.com/jhoicas/dashboard-api/internal/i18n"
	"github.com/jhoicas/dashboard-api/pkg/bus"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// State fase de sincronización del cliente.
type State string

const (
	// StateLoading copia local adoptada, respuesta de la API pendiente.
	StateLoading State = "loading"
	// StateSynced la API respondió y su copia es la vigente.
	StateSynced State = "synced"
	// StateFallback la API no respondió; rige la copia local o el default.
	StateFallback State = "fallback"
)

const themeFileName = "theme"

// Options configura el sincronizador.
type Options struct {
	// BaseURL URL base de la API (sin la ruta /api/settings).
	BaseURL string
	// CacheFile copia local de settings en disco.
	CacheFile string
	// HTTPClient opcional; por defecto uno con timeout de 10s.
	HTTPClient *http.Client
	// Bus opcional: señal en proceso de cambios de settings.
	Bus *bus.Bus
	Log *logger.Logger
}

// Synchronizer replica el registro de settings de la API y lo mantiene al
// día a través de dos señales de cambio: el watcher del archivo de caché
// (escrituras de otros procesos) y el bus en memoria (escrituras de este
// mismo proceso). Todas las lecturas pasan por el saneador, así que el
// estado expuesto siempre es un registro completo y válido.
type Synchronizer struct {
	baseURL   string
	cacheFile string
	client    *http.Client
	bus       *bus.Bus
	log       *logger.Logger

	mu       sync.RWMutex
	state    State
	current  entity.Settings
	gen      uint64
	loc      *i18n.Localizer
	locLang  string
	locCur   string
	stopOnce sync.Once
	stopped  chan struct{}
}

// New construye el sincronizador en estado Loading con los defaults como
// copia vigente.
func New(opts Options) *Synchronizer {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Synchronizer{
		baseURL:   opts.BaseURL,
		cacheFile: opts.CacheFile,
		client:    httpClient,
		bus:       opts.Bus,
		log:       log,
		state:     StateLoading,
		current:   settings.Default(),
		stopped:   make(chan struct{}),
	}
}

// State devuelve la fase de sincronización actual.
func (s *Synchronizer) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Settings devuelve la copia vigente (siempre completa y válida).
func (s *Synchronizer) Settings() entity.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// ReadLocal adopta la copia local en disco sin tocar la red. Un archivo
// ausente o corrupto equivale a los defaults.
func (s *Synchronizer) ReadLocal() entity.Settings {
	raw, err := os.ReadFile(s.cacheFile)
	if err != nil {
		return settings.Default()
	}
	return settings.SanitizeJSON(raw)
}

// Load sincroniza: adopta la copia local de inmediato (render sin
// parpadeo) y luego consulta la API. Si la API responde, su copia gana y
// se reescribe la caché; si falla, el estado queda en Fallback sin error
// visible para el consumidor. Una respuesta que llega después de que otro
// Load arrancó se descarta (contador de generación).
func (s *Synchronizer) Load(ctx context.Context) error {
	local := s.ReadLocal()

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.state = StateLoading
	s.current = local
	s.mu.Unlock()

	remote, err := s.fetch(ctx)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return nil
		}
		s.state = StateFallback
		s.log.Warn().Err(err).Msg("settings remotos no disponibles, se usa la copia local")
		return nil
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return nil
	}
	s.state = StateSynced
	s.current = remote
	s.mu.Unlock()

	if err := s.writeCache(remote); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo actualizar la caché local de settings")
	}
	return nil
}

func (s *Synchronizer) fetch(ctx context.Context) (entity.Settings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/settings", nil)
	if err != nil {
		return entity.Settings{}, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return entity.Settings{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entity.Settings{}, fmt.Errorf("GET /api/settings: estado %d", resp.StatusCode)
	}

	var body struct {
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.Settings{}, err
	}
	return settings.SanitizeJSON(body.Settings), nil
}

// SavePreferences aplica un cambio explícito de preferencias: normaliza,
// adopta, escribe la caché y el archivo legado de tema, y notifica por el
// bus. La escritura local es write-through: no espera a la próxima
// sincronización.
func (s *Synchronizer) SavePreferences(next entity.Settings) error {
	normalized := settings.Normalize(next)

	s.mu.Lock()
	s.current = normalized
	s.mu.Unlock()

	if err := s.writeCache(normalized); err != nil {
		return err
	}
	if s.bus != nil {
		if err := s.bus.Publish(bus.TopicSettingsUpdated, normalized); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo publicar el cambio de preferencias")
		}
	}
	return nil
}

func (s *Synchronizer) writeCache(cfg entity.Settings) error {
	dir := filepath.Dir(s.cacheFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.cacheFile, raw, 0o644); err != nil {
		return err
	}
	// Archivo legado: solo el tema, para lectores que no entienden el
	// documento completo.
	return os.WriteFile(filepath.Join(dir, themeFileName), []byte(cfg.Theme), 0o644)
}

// Watch arranca las dos señales de cambio y re-lee la caché al recibir
// cualquiera de ellas. Bloquea hasta Stop o la cancelación del contexto.
func (s *Synchronizer) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.cacheFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		watcher.Close()
		return err
	}
	// Se observa el directorio, no el archivo: los reemplazos atómicos
	// (rename) invalidan el watch de un archivo individual.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	var events <-chan bus.Event
	cancel := func() {}
	if s.bus != nil {
		events, cancel = s.bus.Subscribe(bus.TopicSettingsUpdated)
	}

	defer func() {
		cancel()
		watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopped:
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(s.cacheFile) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.adoptLocal()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn().Err(err).Msg("error del watcher de la caché de settings")
		case _, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			// El payload trae el registro nuevo, pero la caché es la
			// fuente local autoritativa: se re-lee en lugar de confiar
			// en el evento.
			s.adoptLocal()
		}
	}
}

// Stop detiene Watch. Idempotente.
func (s *Synchronizer) Stop() {
	s.stopOnce.Do(func() { close(s.stopped) })
}

func (s *Synchronizer) adoptLocal() {
	next := s.ReadLocal()
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}

// localizer devuelve el formateador memoizado para el par (idioma,
// moneda) vigente; se reconstruye solo cuando alguno cambia.
func (s *Synchronizer) localizer() *i18n.Localizer {
	s.mu.RLock()
	lang, cur := s.current.Language, s.current.Currency
	if s.loc != nil && s.locLang == lang && s.locCur == cur {
		loc := s.loc
		s.mu.RUnlock()
		return loc
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loc == nil || s.locLang != lang || s.locCur != cur {
		s.loc = i18n.New(lang, cur)
		s.locLang = lang
		s.locCur = cur
	}
	return s.loc
}

// FormatCurrency renderiza un monto en la moneda y locale vigentes.
func (s *Synchronizer) FormatCurrency(v decimal.Decimal) string {
	return s.localizer().FormatCurrency(v)
}

// FormatNumber renderiza un entero con el agrupado del locale vigente.
func (s *Synchronizer) FormatNumber(n int) string {
	return s.localizer().FormatNumber(n)
}

// FormatDate renderiza una fecha almacenada (YYYY-MM-DD o RFC 3339) en el
// idioma vigente. Devuelve el valor crudo si no es parseable.
func (s *Synchronizer) FormatDate(value string, style i18n.DateStyle) string {
	t, ok := i18n.ParseStoredDate(value)
	if !ok {
		return value
	}
	return s.localizer().FormatDate(t, style)
}

// T resuelve una clave del diccionario de copy en el idioma vigente.
func (s *Synchronizer) T(key string, params ...i18n.M) string {
	return s.localizer().T(key, params...)
}

// CountLabel compone "N sustantivo" con el plural correcto del idioma
// vigente.
func (s *Synchronizer) CountLabel(ent i18n.CountEntity, n int) string {
	return s.localizer().CountLabel(ent, n)
}

// Labels de dominio en el idioma vigente.

func (s *Synchronizer) ProductCategoryLabel(category string) string {
	return s.localizer().ProductCategoryLabel(category)
}

func (s *Synchronizer) ProductStatusLabel(status string) string {
	return s.localizer().ProductStatusLabel(status)
}

func (s *Synchronizer) UserPlanLabel(plan string) string {
	return s.localizer().UserPlanLabel(plan)
}

func (s *Synchronizer) CampaignTypeLabel(typ string) string {
	return s.localizer().CampaignTypeLabel(typ)
}

func (s *Synchronizer) CampaignFrequencyLabel(frequency string) string {
	return s.localizer().CampaignFrequencyLabel(frequency)
}

func (s *Synchronizer) CampaignStatusLabel(status string) string {
	return s.localizer().CampaignStatusLabel(status)
}
