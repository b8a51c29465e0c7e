// Package search фильтрует заявки по свободному тексту.
package search

import (
	"strings"

	"github.com/magabrotheeeer/agency-dashboard/internal/models"
)

// Leads возвращает заявки, у которых имя, email или профессия содержат query
// без учёта регистра. Порядок исходной коллекции сохраняется.
// Пустой запрос возвращает коллекцию без изменений; строка из пробелов
// ищется как есть.
func Leads(leads []models.Lead, query string) []models.Lead {
	if query == "" {
		return leads
	}

	needle := strings.ToLower(query)
	res := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if Match(lead, needle) {
			res = append(res, lead)
		}
	}
	return res
}

// Match проверяет заявку на уже приведённую к нижнему регистру подстроку.
// Сообщение и дата заявки в поиске не участвуют.
func Match(lead models.Lead, needle string) bool {
	return strings.Contains(strings.ToLower(lead.Name), needle) ||
		strings.Contains(strings.ToLower(lead.Email), needle) ||
		strings.Contains(strings.ToLower(lead.Profession), needle)
}
