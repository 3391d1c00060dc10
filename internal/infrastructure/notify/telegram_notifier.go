package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"burgerbude/internal/domain/entities"
	"burgerbude/internal/metrics"
	"burgerbude/internal/usecase/interfaces"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier posts a formatted new-order message to the configured
// Telegram chat. It is intentionally forgiving: missing configuration turns
// every send into a logged no-op, and send failures never reach the customer
// path.

type TelegramNotifier struct {
	settings interfaces.ISettingsProvider
	client   *http.Client
	baseURL  string
}

var _ interfaces.IOrderNotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(settings interfaces.ISettingsProvider) *TelegramNotifier {
	return &TelegramNotifier{
		settings: settings,
		client:   &http.Client{Timeout: 10 * time.Second},
		baseURL:  telegramAPIBase,
	}
}

func (n *TelegramNotifier) NotifyNewOrder(ctx context.Context, o entities.Order) error {
	cfg := n.settings.Get().Telegram
	if cfg.BotToken == "" || cfg.ChatID == "" {
		log.Printf("[notify][telegram] not configured, skipping id=%s", o.ID)
		return nil
	}

	payload, err := json.Marshal(map[string]any{
		"chat_id":                  cfg.ChatID,
		"text":                     BuildOrderMessage(o),
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		metrics.NotifyFailuresTotal.Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		metrics.NotifyFailuresTotal.Inc()
		return fmt.Errorf("telegram sendMessage status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	log.Printf("[notify][telegram] sent id=%s", o.ID)
	return nil
}

var categoryTitles = map[string]string{
	"burger":    "🍔 Burger",
	"drinks":    "🥤 Getränke",
	"sauces":    "🥫 Soßen",
	"donuts":    "🍩 Donuts",
	"hotdogs":   "🌭 Hotdogs",
	"vegan":     "🌱 Vegan",
	"bubbleTea": "🧋 Bubble Tea",
	"extras":    "➕ Extras",
}

func categoryTitle(key string) string {
	if t, ok := categoryTitles[key]; ok {
		return t
	}
	return "📦 Sonstiges"
}

// BuildOrderMessage renders the kitchen notification: items grouped by
// category, add-ons and removals per line, totals block and customer block.
func BuildOrderMessage(o entities.Order) string {
	var b strings.Builder

	modeTitle := "🚗 Lieferung"
	if o.Mode == entities.OrderModePickup {
		modeTitle = "🏪 Abholung"
	}
	fmt.Fprintf(&b, "<b>🆕 Bestellung %s</b> — %s\n", htmlEscape(o.ID), modeTitle)
	if o.Planned != "" {
		fmt.Fprintf(&b, "🕐 Geplant: %s\n", htmlEscape(o.Planned))
	}
	b.WriteString("\n")

	groups := map[string][]entities.OrderItem{}
	for _, it := range o.Items {
		key := entities.CategoryKey(it.ClassifierText())
		groups[key] = append(groups[key], it)
	}
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, "<b>%s</b>\n", categoryTitle(k))
		for _, it := range groups[k] {
			qty := it.Qty
			if qty < 1 {
				qty = 1
			}
			fmt.Fprintf(&b, "  %d× %s", qty, htmlEscape(it.Name))
			if it.Price > 0 {
				fmt.Fprintf(&b, " — %s €", formatEUR(it.Price))
			}
			b.WriteString("\n")
			for _, a := range it.AddOns {
				fmt.Fprintf(&b, "    + %s\n", htmlEscape(a.Name))
			}
			for _, rm := range it.Removed {
				fmt.Fprintf(&b, "    Ohne %s\n", htmlEscape(rm))
			}
			if it.Note != "" {
				fmt.Fprintf(&b, "    📝 %s\n", htmlEscape(it.Note))
			}
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Warenwert: %s €\n", formatEUR(o.Totals.Merchandise))
	if o.Totals.Discount > 0 {
		fmt.Fprintf(&b, "Rabatt: −%s €\n", formatEUR(o.Totals.Discount))
	}
	if o.Totals.Surcharges > 0 {
		fmt.Fprintf(&b, "Zuschläge: %s €\n", formatEUR(o.Totals.Surcharges))
	}
	if o.Totals.Coupon != "" {
		fmt.Fprintf(&b, "Gutschein: %s\n", htmlEscape(o.Totals.Coupon))
	}
	fmt.Fprintf(&b, "<b>Gesamt: %s €</b>\n", formatEUR(o.Totals.Total))

	b.WriteString("\n")
	fmt.Fprintf(&b, "👤 %s\n", htmlEscape(o.Customer.Name))
	if o.Customer.Phone != "" {
		fmt.Fprintf(&b, "📞 %s\n", htmlEscape(o.Customer.Phone))
	}
	if o.Mode == entities.OrderModeDelivery && o.Customer.Address != "" {
		fmt.Fprintf(&b, "📍 %s\n", htmlEscape(o.Customer.Address))
	}

	return b.String()
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// formatEUR renders a price with the German decimal comma.
func formatEUR(v float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%.2f", v), ".", ",")
}
