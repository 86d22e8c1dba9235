package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// urlPathParam devuelve el parámetro de ruta ya decodificado. Los nombres
// de categoría pueden llevar espacios y acentos, que viajan escapados en
// la URL.
func urlPathParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
