package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"settlements-service/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SchemasFS содержит JSON-схемы содержимого блоков главной страницы.
// Схемы применяются в момент редактирования, а не при чтении из БД.
//
//go:embed schemas
var SchemasFS embed.FS

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Добавляем все схемы как ресурсы.
	// Это нужно, чтобы схемы могли ссылаться друг на друга через `$ref`
	err := fs.WalkDir(SchemasFS, "schemas/blocks", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			file, _ := SchemasFS.Open(path)
			defer file.Close()
			if err := compiler.AddResource(path, file); err != nil {
				log.Fatalf("failed to add schema resource %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	// Снова обходим для компиляции и регистрации
	err = fs.WalkDir(SchemasFS, "schemas/blocks", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			schema, err := compiler.Compile(path)
			if err != nil {
				log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
				return nil
			}

			key := generateKeyFromPath(path)
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "schemas/blocks/hero/v1.json"
// в ключ вида "HeroBlock/1.0.0".
func generateKeyFromPath(path string) string {
	trimmedPath := strings.TrimPrefix(path, "schemas/blocks/")
	trimmedPath = strings.TrimSuffix(trimmedPath, ".json")

	parts := strings.Split(trimmedPath, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)

	nameParts := strings.Split(parts[0], "-")
	var nameBuilder strings.Builder
	for _, p := range nameParts {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString("Block")
	name := nameBuilder.String()

	version := strings.Replace(parts[1], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", name, version)
}

// blockSchemaKey — ключ схемы для типа блока (текущая версия схем — 1.0.0).
func blockSchemaKey(t domain.BlockType) string {
	caser := cases.Title(language.English)
	return fmt.Sprintf("%sBlock/1.0.0", caser.String(string(t)))
}

// ValidateBlockContent проверяет JSON-содержимое блока по схеме его типа.
// Ошибка схемы возвращается как ValidationError: до хранилища она не доходит.
func ValidateBlockContent(t domain.BlockType, body []byte) error {
	schema, ok := compiledSchemas[blockSchemaKey(t)]
	if !ok {
		return domain.NewValidationError("blockType", fmt.Sprintf("schema for block type '%s' not found", t))
	}

	// Распарсить JSON в универсальный тип interface{}
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		// Если это невалидный JSON, валидация по схеме невозможна
		return domain.NewValidationError("content", "content is not a valid JSON: "+err.Error())
	}

	if err := schema.Validate(v); err != nil {
		return domain.NewValidationError("content", err.Error())
	}

	return nil
}
