package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"mind-journal/internal/config"
	"mind-journal/internal/db"
	"mind-journal/internal/domain"
	"mind-journal/internal/llm"
	"mind-journal/internal/repository"
	"mind-journal/internal/sentiment"
	"mind-journal/internal/service"
	"mind-journal/internal/speech"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	handle, err := db.Open(ctx, cfg.DBDir, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer handle.Close()

	conversationRepo := repository.NewSQLiteConversationRepository(handle)
	messageRepo := repository.NewSQLiteMessageRepository(handle)
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)

	var recognizer speech.Recognizer
	if cfg.SpeechBaseURL != "" {
		recognizer = speech.NewHTTPRecognizer(cfg.SpeechBaseURL, cfg.SpeechAPIKey, logger)
	}

	chatSvc := service.NewChatService(logger, sentiment.NewVaderScorer(), llmClient, conversationRepo, messageRepo, nil, recognizer)

	language := speech.NormalizeLanguage(cfg.SpeechLang)

	for {
		fmt.Println("===== Diario Emocional =====")
		conversations, err := chatSvc.ListConversations(ctx)
		if err != nil {
			log.Fatalf("listar conversaciones: %v", err)
		}

		if len(conversations) == 0 {
			fmt.Println("No hay conversaciones. Creando una nueva...")
			conv, err := chatSvc.StartConversation(ctx, "")
			if err != nil {
				log.Fatalf("crear conversacion: %v", err)
			}
			conversations = append(conversations, conv)
		}

		fmt.Println("Conversaciones (la mas nueva primero):")
		for i, conv := range conversations {
			fmt.Printf("[%d] %s (actualizada %s)\n", i+1, conv.Title, conv.LastUpdated.Local().Format("2006-01-02 15:04"))
		}
		fmt.Println("[N] Nueva conversacion")
		fmt.Println("[B] Borrar conversacion")
		fmt.Println("[S] Salir")
		fmt.Print("Selecciona una opcion: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)

		switch {
		case strings.EqualFold(choice, "S"):
			return
		case strings.EqualFold(choice, "N"):
			conv, err := chatSvc.StartConversation(ctx, "")
			if err != nil {
				fmt.Printf("Error creando conversacion: %v\n", err)
				continue
			}
			chatFlow(ctx, reader, chatSvc, conv, language)
		case strings.EqualFold(choice, "B"):
			deleteFlow(ctx, reader, chatSvc, conversations)
		default:
			idx, err := strconv.Atoi(choice)
			if err != nil || idx < 1 || idx > len(conversations) {
				fmt.Println("Seleccion invalida.")
				continue
			}
			conv := conversations[idx-1]
			printHistory(ctx, chatSvc, conv)
			chatFlow(ctx, reader, chatSvc, conv, language)
		}
	}
}

func deleteFlow(ctx context.Context, reader *bufio.Reader, chatSvc *service.ChatService, conversations []domain.Conversation) {
	fmt.Print("Numero de conversacion a borrar: ")
	line, _ := reader.ReadString('\n')
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 1 || idx > len(conversations) {
		fmt.Println("Seleccion invalida.")
		return
	}
	if err := chatSvc.DeleteConversation(ctx, conversations[idx-1].ID); err != nil {
		fmt.Printf("Error borrando: %v\n", err)
		return
	}
	fmt.Println("Conversacion borrada (con todos sus mensajes).")
}

func printHistory(ctx context.Context, chatSvc *service.ChatService, conv domain.Conversation) {
	messages, err := chatSvc.ListMessages(ctx, conv.ID)
	if err != nil {
		fmt.Printf("Error leyendo historial: %v\n", err)
		return
	}
	fmt.Printf("\n--- %s ---\n", conv.Title)
	for _, msg := range messages {
		printMessage(msg)
	}
}

func chatFlow(ctx context.Context, reader *bufio.Reader, chatSvc *service.ChatService, conv domain.Conversation, language string) {
	fmt.Println("---- Modo Chat ----")
	fmt.Println("Escribe como te sientes. Comandos: 'salir' termina; '/voz <archivo>' manda audio.")
	for {
		fmt.Print("Tu > ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		text = strings.TrimSpace(text)
		if strings.EqualFold(text, "salir") || strings.EqualFold(text, "exit") {
			return
		}
		if text == "" {
			fmt.Println("Por favor escribe un mensaje valido.")
			continue
		}

		var result service.TurnResult
		if path, ok := strings.CutPrefix(text, "/voz "); ok {
			result, err = voiceTurn(ctx, chatSvc, conv.ID, strings.TrimSpace(path), language)
		} else {
			result, err = chatSvc.HandleTurn(ctx, conv.ID, text)
		}
		if err != nil {
			printTurnError(err)
			continue
		}

		printMessage(result.UserMessage)
		printAdvice(result.Advice)
		printMessage(result.AssistantMessage)
	}
}

func voiceTurn(ctx context.Context, chatSvc *service.ChatService, conversationID, path, language string) (service.TurnResult, error) {
	audio, err := os.ReadFile(path)
	if err != nil {
		return service.TurnResult{}, fmt.Errorf("leer audio: %w", err)
	}
	fmt.Println("Transcribiendo audio...")
	return chatSvc.HandleVoiceTurn(ctx, conversationID, audio, language)
}

func printTurnError(err error) {
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		fmt.Println("Por favor escribe un mensaje valido.")
	case errors.Is(err, speech.ErrNoSpeech):
		fmt.Println("No se reconocio voz en el audio.")
	case service.IsCollaborator(err, service.CollaboratorModel):
		fmt.Printf("El modelo no respondio: %v\n", err)
	default:
		fmt.Printf("Error en el turno: %v\n", err)
	}
}

func printMessage(msg domain.Message) {
	who := "Tu"
	if msg.Role == domain.RoleAssistant {
		who = "Asistente"
	}
	fmt.Printf("\n%s > %s\n", who, msg.Content)

	if msg.Sentiment != nil && msg.SentimentScore != nil {
		pct := int(*msg.SentimentScore * 100)
		fmt.Printf("   %s %s | Intensidad: %s (%d%%)\n",
			msg.Sentiment.Style().Icon,
			*msg.Sentiment,
			domain.IntensityLevel(*msg.SentimentScore),
			pct,
		)
	}
}

func printAdvice(advice domain.Advice) {
	fmt.Println("\n💡 Recomendaciones:")
	for i, rec := range advice.Recommendations {
		fmt.Printf("%d. %s\n", i+1, rec)
	}
	if len(advice.Resources) > 0 {
		fmt.Println("🔗 Recursos:")
		for _, r := range advice.Resources {
			fmt.Printf("• %s (%s)\n", r.Title, r.URL)
		}
	}
	fmt.Println()
}
