// Package model содержит доменные структуры каталога активностей.
package model

// Activity описывает внеклассную активность: описание, расписание,
// подсказку по вместимости и список записанных участников.
// Имя активности служит ключом в каталоге и в саму структуру не входит.
type Activity struct {
	Description     string   `json:"description" toml:"description"`
	Schedule        string   `json:"schedule" toml:"schedule"`
	MaxParticipants int      `json:"max_participants" toml:"max_participants"`
	Participants    []string `json:"participants" toml:"participants"`
}

// Roster описывает весь каталог: имя активности -> активность.
// Имена непрозрачны (могут содержать пробелы) и не разбираются.
type Roster map[string]Activity
