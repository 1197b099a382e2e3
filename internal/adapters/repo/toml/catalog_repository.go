package toml

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/spidy/internal/domain"
	"github.com/bnema/spidy/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	CatalogPathKey    = "catalog.path"
	catalogFileMode   = 0o644
	catalogDirMode    = 0o755
	catalogConfigDir  = ".spidy"
	catalogConfigFile = "catalog.toml"
	tempFilePattern   = ".catalog-*.toml.tmp"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

type CatalogRepository struct {
	catalogPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(cfg *viper.Viper) (*CatalogRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	catalogPath := cfg.GetString(CatalogPathKey)
	if catalogPath == "" {
		defaultPath, err := DefaultCatalogPath()
		if err != nil {
			return nil, err
		}
		catalogPath = defaultPath
	}

	catalogPath, err := normalizeCatalogPath(catalogPath)
	if err != nil {
		return nil, err
	}

	return &CatalogRepository{catalogPath: catalogPath, mu: lockForPath(catalogPath)}, nil
}

func DefaultCatalogPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, catalogConfigDir, catalogConfigFile), nil
}

// DefaultCatalogTOML returns the catalog shipped with the binary.
func DefaultCatalogTOML() []byte {
	out := make([]byte, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

func DefaultCatalog() (domain.Catalog, error) {
	file, err := decodeSchema(defaultCatalog)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("decode default catalog: %w", err)
	}
	return fromSchema(file), nil
}

func (r *CatalogRepository) Path() string {
	return r.catalogPath
}

// Load reads the catalog file, falling back to the default catalog when the
// file does not exist.
func (r *CatalogRepository) Load(ctx context.Context) (domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return domain.Catalog{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.catalogPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultCatalog()
		}
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	file, err := decodeSchema(data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog file %s: %w", r.catalogPath, err)
	}

	return fromSchema(file), nil
}

func (r *CatalogRepository) Save(ctx context.Context, catalog domain.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := toml.Marshal(toSchema(catalog))
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	return r.writeFile(data)
}

// WriteDefault installs the default catalog file. An existing file is only
// replaced when force is set.
func (r *CatalogRepository) WriteDefault(ctx context.Context, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !force {
		if _, err := os.Stat(r.catalogPath); err == nil {
			return fmt.Errorf("catalog file %s already exists", r.catalogPath)
		}
	}

	return r.writeFile(defaultCatalog)
}

func decodeSchema(data []byte) (fileSchema, error) {
	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeCatalogPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *CatalogRepository) writeFile(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(r.catalogPath), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.catalogPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, r.catalogPath); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(catalog domain.Catalog) fileSchema {
	file := fileSchema{
		Version:  currentSchemaVersion,
		Commands: make([]commandSchema, 0, len(catalog.Templates)),
		Apps:     make(map[string]appSchema, len(catalog.Apps)),
	}

	for _, tmpl := range catalog.Templates {
		file.Commands = append(file.Commands, commandSchema{
			Pattern: tmpl.Pattern,
			App:     string(tmpl.AppID),
			Intent:  string(tmpl.Intent),
			Reply:   tmpl.Reply,
		})
	}

	for id, app := range catalog.Apps {
		entry := appSchema{Name: app.Name, Web: app.WebURL, Native: app.NativeScheme}
		if len(app.Links) > 0 {
			entry.Links = make(map[string]linkSchema, len(app.Links))
			for op, link := range app.Links {
				entry.Links[string(op)] = linkSchema{Web: link.Web, Native: link.Native}
			}
		}
		file.Apps[string(id)] = entry
	}

	return file
}

func fromSchema(file fileSchema) domain.Catalog {
	catalog := domain.Catalog{
		Templates: make([]domain.CommandTemplate, 0, len(file.Commands)),
		Apps:      make(domain.AppRegistry, len(file.Apps)),
	}

	for _, cmd := range file.Commands {
		catalog.Templates = append(catalog.Templates, domain.CommandTemplate{
			Pattern: cmd.Pattern,
			AppID:   domain.AppID(cmd.App),
			Intent:  domain.Intent(cmd.Intent),
			Reply:   cmd.Reply,
		})
	}

	for id, app := range file.Apps {
		entry := domain.App{
			ID:           domain.AppID(id),
			Name:         app.Name,
			WebURL:       app.Web,
			NativeScheme: app.Native,
		}
		if len(app.Links) > 0 {
			entry.Links = make(map[domain.Intent]domain.Link, len(app.Links))
			for op, link := range app.Links {
				entry.Links[domain.Intent(op)] = domain.Link{Web: link.Web, Native: link.Native}
			}
		}
		catalog.Apps[domain.AppID(id)] = entry
	}

	return catalog
}
