// Command gen generates type-safe gorm query helpers for the carewatch models.
package main

import (
	"carewatch/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
