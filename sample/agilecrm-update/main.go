package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/xavierca1/flow-nodes/internal/config"
	"github.com/xavierca1/flow-nodes/internal/entity"
	"github.com/xavierca1/flow-nodes/internal/infra/integration/agilecrm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	contactID := flag.Int64("id", 0, "ID do contato no AgileCRM")
	tags := flag.String("tags", "", "tags separadas por vírgula")
	star := flag.Int("star", -1, "star value (0-5), -1 para não alterar")
	flag.Parse()

	cfg := config.Load()
	if cfg.AgileCRMEmail == "" || cfg.AgileCRMAPIKey == "" {
		log.Fatal("❌ AGILECRM_EMAIL e AGILECRM_API_KEY devem estar configurados no .env")
	}
	if *contactID == 0 {
		log.Fatal("❌ informe -id")
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := agilecrm.NewClient(cfg.AgileCRMBaseURL, entity.AgileCRMCredentials{
		Email:  cfg.AgileCRMEmail,
		APIKey: cfg.AgileCRMAPIKey,
	}, logger)

	contact := entity.ContactUpdate{ID: *contactID}
	if *tags != "" {
		contact.Tags = strings.Split(*tags, ",")
	}
	if *star >= 0 {
		contact.StarValue = star
	}

	fmt.Printf("🔄 Atualizando contato %d no AgileCRM...\n", *contactID)

	result, err := client.UpdateContact(context.Background(), agilecrm.UpdateRequest{Contact: contact})
	if err != nil {
		log.Fatalf("Erro ao atualizar contato: %v", err)
	}

	fmt.Printf("✅ Itens atualizados: %s\n", strings.Join(result.Updated, ", "))
	json.NewEncoder(os.Stdout).Encode(result.Response)
}
