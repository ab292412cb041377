package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates парсит встроенные HTML-шаблоны. Шаблоны вшиты в бинарь,
// чтобы и приложение, и тестовый сервер работали из любого каталога.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
