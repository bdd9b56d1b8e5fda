package hellomcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const greetingPromptName = "greeting"

// defaultLanguage is the fallback for omitted or unrecognized language
// arguments. Unknown languages degrade to English instead of erroring.
const defaultLanguage = "en"

// greetingLanguages fixes the order languages appear in rendered output.
var greetingLanguages = []string{"en", "de", "es"}

// languageAliases maps full language names onto template codes.
var languageAliases = map[string]string{
	"english": "en",
	"german":  "de",
	"spanish": "es",
}

var greetingTemplates = map[string]string{
	"en": `Hello! I'm a friendly MCP server built for learning purposes.
I can help you understand how MCP servers work by demonstrating:
- Tools: Functions you can call (like getting the time)
- Resources: Data I can provide (like server information)
- Prompts: Templates I can generate (like this greeting)

Try calling my tools or asking for my resources!`,

	"de": `Hallo! Ich bin ein freundlicher MCP Server, der zu Lernzwecken erstellt wurde.
Ich kann dir helfen zu verstehen, wie MCP Server funktionieren, indem ich demonstriere:
- Tools: Funktionen, die du aufrufen kannst (wie die Uhrzeit abfragen)
- Resources: Daten, die ich bereitstellen kann (wie Server-Informationen)
- Prompts: Vorlagen, die ich generieren kann (wie diese Begrüßung)

Probiere meine Tools aus oder frage nach meinen Ressourcen!`,

	"es": `¡Hola! Soy un servidor MCP amigable creado con fines de aprendizaje.
Puedo ayudarte a entender cómo funcionan los servidores MCP demostrando:
- Tools: Funciones que puedes llamar (como obtener la hora)
- Resources: Datos que puedo proporcionar (como información del servidor)
- Prompts: Plantillas que puedo generar (como este saludo)

¡Prueba mis herramientas o pregunta por mis recursos!`,
}

// greetingPrompt describes the greeting prompt.
func greetingPrompt() *mcp.Prompt {
	return &mcp.Prompt{
		Name:        greetingPromptName,
		Description: "Generate a friendly greeting message in multiple languages",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "language",
				Description: "Language code for the greeting (en, de, es)",
			},
		},
	}
}

// greetingHandler renders the greeting template for the resolved language.
func (s *Server) greetingHandler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		requested := ""
		if req != nil && req.Params != nil {
			requested = req.Params.Arguments["language"]
		}
		language := resolveLanguage(requested)

		text := greetingTemplates[language] +
			fmt.Sprintf("\n\n(Available languages: %s)", strings.Join(greetingLanguages, ", "))

		return &mcp.GetPromptResult{
			Description: fmt.Sprintf("Friendly greeting in %s", language),
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: text},
				},
			},
		}, nil
	}
}

// resolveLanguage maps a requested language onto a template code. Both
// codes ("de") and full names ("german") are accepted, case-insensitively.
// Anything unrecognized resolves to the default language.
func resolveLanguage(requested string) string {
	if requested == "" {
		return defaultLanguage
	}

	lang := strings.ToLower(requested)
	if code, ok := languageAliases[lang]; ok {
		lang = code
	}
	if _, ok := greetingTemplates[lang]; ok {
		return lang
	}

	return defaultLanguage
}
