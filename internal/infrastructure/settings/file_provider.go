package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/usecase/interfaces"
)

const settingsFileName = "settings.json"

// cacheTTL bounds how often the settings file is re-read. Admin edits land
// within a few seconds without a per-request disk hit.
const cacheTTL = 5 * time.Second

// FileProvider reads back-office settings from settings.json in the data
// directory, falling back to environment variables. It never fails: a missing
// or broken file yields the env/default configuration.

type FileProvider struct {
	path string

	mu       sync.Mutex
	cached   entities.ServerSettings
	cachedAt time.Time
}

var _ interfaces.ISettingsProvider = (*FileProvider)(nil)

func NewFileProvider(dataDir string) *FileProvider {
	return &FileProvider{path: filepath.Join(dataDir, settingsFileName)}
}

func (p *FileProvider) Get() entities.ServerSettings {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cachedAt.IsZero() && time.Since(p.cachedAt) < cacheTTL {
		return p.cached
	}

	s := fromEnv()
	if raw, err := os.ReadFile(p.path); err == nil {
		var file entities.ServerSettings
		if err := json.Unmarshal(raw, &file); err == nil {
			s = merge(s, file)
		}
	}

	p.cached = s
	p.cachedAt = time.Now()
	return s
}

// merge overlays file values on top of the env fallback; zero file fields keep
// the fallback.
func merge(base, file entities.ServerSettings) entities.ServerSettings {
	out := base
	if file.Hours.AvgPickupMinutes > 0 {
		out.Hours.AvgPickupMinutes = file.Hours.AvgPickupMinutes
	}
	if file.Hours.AvgDeliveryMinutes > 0 {
		out.Hours.AvgDeliveryMinutes = file.Hours.AvgDeliveryMinutes
	}
	if file.Orders.IDLength > 0 {
		out.Orders.IDLength = file.Orders.IDLength
	}
	if file.Pricing != nil {
		out.Pricing = file.Pricing
	}
	if file.Telegram.BotToken != "" {
		out.Telegram.BotToken = file.Telegram.BotToken
	}
	if file.Telegram.ChatID != "" {
		out.Telegram.ChatID = file.Telegram.ChatID
	}
	return out
}

func fromEnv() entities.ServerSettings {
	return entities.ServerSettings{
		Hours: entities.HoursSettings{
			AvgPickupMinutes:   envInt("AVG_PICKUP_MINUTES", 15),
			AvgDeliveryMinutes: envInt("AVG_DELIVERY_MINUTES", 35),
		},
		Orders: entities.OrdersSettings{
			IDLength: envInt("ORDER_ID_LENGTH", 6),
		},
		Telegram: entities.TelegramSettings{
			BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
			ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		},
	}
}

func envInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
