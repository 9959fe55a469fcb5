package models

import (
	"slices"
	"time"
)

// RecycleBinGroup группа, в которую попадают удаленные (trashed) записи
const RecycleBinGroup = "Recycle Bin"

// CustomProperty представляет дополнительное именованное поле записи KeePass.
type CustomProperty struct {
	Name      string `json:"name"`      // Name имя поля (например, "KP2A_URL")
	Value     string `json:"value"`     // Value значение
	Protected bool   `json:"protected"` // Protected значение хранится в защищенном виде
}

// TOTPSecret представляет секрет одноразовых паролей (TOTP).
type TOTPSecret struct {
	Secret string `json:"secret"` // Secret base32 секрет
	Title  string `json:"title"`  // Title опциональное отображаемое имя
}

// HistoryEntry представляет предыдущую версию пароля.
type HistoryEntry struct {
	Time     time.Time `json:"time"`     // Time момент, когда пароль был заменен
	Password string    `json:"password"` // Password старое значение пароля
}

// Entry представляет запись в целевой базе KeePass.
// Заполняется проектором по одной записи 1PIF и после этого не меняется.
type Entry struct {
	CreatedAt        time.Time        `json:"created_at"`        // CreatedAt время создания
	ModifiedAt       time.Time        `json:"modified_at"`       // ModifiedAt время последнего изменения
	Group            string           `json:"group"`             // Group имя группы верхнего уровня
	Title            string           `json:"title"`             // Title заголовок записи
	UUID             string           `json:"uuid"`              // UUID идентификатор исходной записи 1PIF
	Username         string           `json:"username"`          // Username имя пользователя
	Password         string           `json:"password"`          // Password текущий пароль
	URL              string           `json:"url"`               // URL основной URL
	Notes            string           `json:"notes"`             // Notes заметки
	URLs             []string         `json:"urls"`              // URLs все URL в порядке добавления, первый совпадает с URL
	Tags             []string         `json:"tags"`              // Tags теги
	CustomProperties []CustomProperty `json:"custom_properties"` // CustomProperties дополнительные поля в порядке добавления
	TOTPSecrets      []TOTPSecret     `json:"totp_secrets"`      // TOTPSecrets секреты TOTP
	History          []HistoryEntry   `json:"history"`           // History история паролей, от старых к новым
	Icon             int64            `json:"icon"`              // Icon индекс стандартной иконки KeePass
}

// SetCustomProperty добавляет поле или заменяет значение существующего,
// сохраняя его позицию.
func (e *Entry) SetCustomProperty(name, value string, protected bool) {
	for i := range e.CustomProperties {
		if e.CustomProperties[i].Name == name {
			e.CustomProperties[i].Value = value
			e.CustomProperties[i].Protected = protected
			return
		}
	}
	e.CustomProperties = append(e.CustomProperties, CustomProperty{Name: name, Value: value, Protected: protected})
}

// CustomProperty возвращает поле по имени.
func (e *Entry) CustomProperty(name string) (CustomProperty, bool) {
	i := slices.IndexFunc(e.CustomProperties, func(p CustomProperty) bool { return p.Name == name })
	if i < 0 {
		return CustomProperty{}, false
	}
	return e.CustomProperties[i], true
}

// AddURL добавляет URL; первый добавленный становится основным.
func (e *Entry) AddURL(u string) {
	if len(e.URLs) == 0 {
		e.URL = u
	}
	e.URLs = append(e.URLs, u)
}
