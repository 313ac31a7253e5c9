package database

import "strings"

// likeEscaper escapa los metacaracteres de LIKE/ILIKE para que el
// término de búsqueda se compare como texto literal
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern envuelve el término en comodines, escapando antes los
// metacaracteres del término mismo
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
