// Package filestore implementa la persistencia del dashboard como un
// mini almacén clave-documento sobre un único archivo JSON legible:
// lecturas auto-reparables (contenido corrupto → dataset semilla) y
// escrituras de sobrescritura completa cuyos errores sí se propagan.
package filestore

import (
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/dashboard-api/internal/domain"
	"github.com/jhoicas/dashboard-api/internal/domain/entity"
	"github.com/jhoicas/dashboard-api/internal/domain/seed"
	"github.com/jhoicas/dashboard-api/internal/domain/settings"
	"github.com/jhoicas/dashboard-api/pkg/bus"
	"github.com/jhoicas/dashboard-api/pkg/logger"
)

// El documento persistido guarda los precios como números JSON, igual que
// el resto de la API.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Imagen por defecto para productos creados sin imagen.
const defaultProductImage = "https://images.unsplash.com/photo-1472851294608-062f824d29cc?w=200&h=200&fit=crop"

// Data es el documento completo persistido.
type Data struct {
	Users    []entity.User    `json:"users"`
	Products []entity.Product `json:"products"`
	Settings entity.Settings  `json:"settings"`
}

// NewUser payload para crear un usuario. Avatar es opcional.
type NewUser struct {
	Avatar string
	Name   string
	Email  string
	Plan   string
}

// NewProduct payload para crear un producto. Image es opcional.
type NewProduct struct {
	Image    string
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
	Status   string
	SKU      string
}

// Store persistencia de users/products/settings sobre un archivo JSON.
//
// Sin locking de archivo: un único proceso escritor con perfil de carga
// bajo; dos SaveSettings casi simultáneos compiten y gana la última
// escritura (last-write-wins, asumido para este dominio).
type Store struct {
	path string
	log  *logger.Logger
	bus  *bus.Bus
}

// New construye el store. El bus es opcional (nil = sin notificaciones).
func New(path string, log *logger.Logger, b *bus.Bus) *Store {
	return &Store{path: path, log: log, bus: b}
}

// Path devuelve la ruta del documento persistido.
func (s *Store) Path() string { return s.path }

func defaultData() Data {
	return Data{
		Users:    seed.Users(),
		Products: seed.Products(),
		Settings: seed.Settings(),
	}
}

// Ensure garantiza que existan el directorio y el archivo de datos,
// sembrándolo con el dataset por defecto si falta. Idempotente.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return s.write(defaultData())
}

// read carga y parsea el documento. Toda falla de lectura o parseo se
// traduce en "usar defaults" colección por colección; settings pasa
// siempre por el normalizador antes de devolverse.
func (s *Store) read() Data {
	if err := s.Ensure(); err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("no se pudo asegurar el store; usando defaults")
		return defaultData()
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("lectura del store falló; usando defaults")
		return defaultData()
	}

	var doc struct {
		Users    json.RawMessage `json:"users"`
		Products json.RawMessage `json:"products"`
		Settings json.RawMessage `json:"settings"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("documento corrupto; usando defaults")
		return defaultData()
	}

	data := Data{Settings: settings.SanitizeJSON(doc.Settings)}
	if err := json.Unmarshal(doc.Users, &data.Users); err != nil || data.Users == nil {
		data.Users = seed.Users()
	}
	if err := json.Unmarshal(doc.Products, &data.Products); err != nil || data.Products == nil {
		data.Products = seed.Products()
	}
	return data
}

// write sobrescribe el documento completo, indentado para lectura humana.
// No es transaccional: un crash a mitad de escritura puede dejar el
// archivo parcial (la lectura auto-reparable lo absorbe).
func (s *Store) write(data Data) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// GetUsers devuelve los usuarios persistidos (más reciente primero).
func (s *Store) GetUsers() []entity.User {
	return s.read().Users
}

// AddUser asigna id = max(existentes)+1 (1 si está vacío — tolera
// eliminaciones previas sin reusar ids), aplica defaults a los campos
// opcionales, antepone el registro y persiste.
func (s *Store) AddUser(payload NewUser) (entity.User, error) {
	if strings.TrimSpace(payload.Name) == "" ||
		strings.TrimSpace(payload.Email) == "" ||
		!entity.IsValidPlan(payload.Plan) {
		return entity.User{}, domain.ErrInvalidInput
	}

	data := s.read()

	nextID := 1
	for _, u := range data.Users {
		if u.ID >= nextID {
			nextID = u.ID + 1
		}
	}

	email := strings.TrimSpace(payload.Email)
	avatar := payload.Avatar
	if avatar == "" {
		avatar = "https://i.pravatar.cc/150?u=" + url.QueryEscape(email)
	}

	user := entity.User{
		ID:          nextID,
		Avatar:      avatar,
		Name:        strings.TrimSpace(payload.Name),
		Email:       email,
		Plan:        payload.Plan,
		DateCreated: time.Now().UTC().Format("2006-01-02"),
	}

	data.Users = append([]entity.User{user}, data.Users...)
	if err := s.write(data); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// GetProducts devuelve los productos persistidos (más reciente primero).
func (s *Store) GetProducts() []entity.Product {
	return s.read().Products
}

// AddProduct misma regla de id y orden que AddUser.
func (s *Store) AddProduct(payload NewProduct) (entity.Product, error) {
	if strings.TrimSpace(payload.Name) == "" ||
		payload.Price.IsNegative() || payload.Stock < 0 ||
		!entity.IsValidProductStatus(payload.Status) {
		return entity.Product{}, domain.ErrInvalidInput
	}

	data := s.read()

	nextID := 1
	for _, p := range data.Products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}

	image := payload.Image
	if image == "" {
		image = defaultProductImage
	}

	product := entity.Product{
		ID:       nextID,
		Image:    image,
		Name:     strings.TrimSpace(payload.Name),
		Category: strings.TrimSpace(payload.Category),
		Price:    payload.Price,
		Stock:    payload.Stock,
		Status:   payload.Status,
		SKU:      strings.TrimSpace(payload.SKU),
	}

	data.Products = append([]entity.Product{product}, data.Products...)
	if err := s.write(data); err != nil {
		return entity.Product{}, err
	}
	return product, nil
}

// GetSettings devuelve el registro de settings, siempre normalizado.
func (s *Store) GetSettings() entity.Settings {
	return s.read().Settings
}

// SaveSettings normaliza, persiste y notifica el cambio por el bus.
// Devuelve el registro normalizado. A diferencia de las lecturas, un
// error de escritura sí es reportable.
func (s *Store) SaveSettings(next entity.Settings) (entity.Settings, error) {
	data := s.read()
	data.Settings = settings.Normalize(next)
	if err := s.write(data); err != nil {
		return entity.Settings{}, err
	}
	if s.bus != nil {
		if err := s.bus.Publish(bus.TopicSettingsUpdated, data.Settings); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo publicar el cambio de settings")
		}
	}
	return data.Settings, nil
}

// Reset restaura el dataset semilla (arranques limpios y tests).
func (s *Store) Reset() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return s.write(defaultData())
}
