package update

import (
	"strings"

	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/views"
)

const maxNotifications = 40

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	names := make([]string, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		names = append(names, string(c))
	}
	return views.RenderCommandPalette(true, m.Palette.Input) + "\n" +
		"add <day> <HH:MM>-<HH:MM> <category> [priority] <title> [-- <description>]\n" +
		"categories: " + strings.Join(names, ", ") + "\n" +
		"toggle|delete <id|selected>, day <name>, show <view>\n"
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Notifications = append(m.Notifications, Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.now().UTC(),
	})
	if len(m.Notifications) > maxNotifications {
		m.Notifications = m.Notifications[len(m.Notifications)-maxNotifications:]
	}
}
