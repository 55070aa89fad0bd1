package web

import (
	"html/template"
	"io/fs"
)

// ParseTemplates carrega todos os templates embutidos
func ParseTemplates() (*template.Template, error) {
	return template.ParseFS(TemplatesFS, "templates/*.html")
}

// Static devolve os arquivos estáticos sem o prefixo do diretório
func Static() (fs.FS, error) {
	return fs.Sub(StaticFS, "static")
}
