package main

import (
	"wchub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.EntrepreneurProfileModel{},
		model.InvestorProfileModel{},
		model.ProjectModel{},
		model.ConversationModel{},
		model.MessageModel{},
		model.InteractionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
