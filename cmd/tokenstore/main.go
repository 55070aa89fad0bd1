// tokenstore mantém o token guardado no armazenamento local usado pelo dashboard.
//
// Uso:
//
//	tokenstore set <token>
//	tokenstore show
//	tokenstore clear
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salesmap-dashboard/internal/config"
	"github.com/vfg2006/salesmap-dashboard/internal/credential"
	"github.com/vfg2006/salesmap-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	store := credential.NewFileStore(cfg.Credential.StorePath)
	key := cfg.Credential.Key

	switch os.Args[1] {
	case "set":
		if len(os.Args) != 3 || os.Args[2] == "" {
			usage()
			os.Exit(2)
		}
		if err := store.Set(key, os.Args[2]); err != nil {
			logrus.WithError(err).Fatal("Erro ao gravar o token")
		}
		logrus.WithFields(logrus.Fields{
			"path": store.Path(),
			"key":  key,
		}).Info("Token gravado")
		describe(os.Args[2])

	case "show":
		token, ok, err := store.Get(key)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao ler o armazenamento local")
		}
		if !ok {
			fmt.Printf("nenhum token na chave %q de %s\n", key, store.Path())
			return
		}
		describe(token)

	case "clear":
		if err := store.Remove(key); err != nil {
			logrus.WithError(err).Fatal("Erro ao remover o token")
		}
		logrus.WithField("key", key).Info("Token removido")

	default:
		usage()
		os.Exit(2)
	}
}

// describe mostra o token mascarado e o que dá para saber dele sem validar a assinatura
func describe(token string) {
	fmt.Printf("token: %s\n", mask(token))

	info, err := credential.Inspect(token)
	if err != nil {
		fmt.Printf("jwt: %v\n", err)
		return
	}

	if info.Subject != "" {
		fmt.Printf("subject: %s\n", info.Subject)
	}

	if info.ExpiresAt == nil {
		fmt.Println("expira: nunca")
		return
	}

	status := "válido"
	if info.Expired(time.Now()) {
		status = "expirado"
	}
	fmt.Printf("expira: %s (%s)\n", info.ExpiresAt.Format(time.RFC3339), status)
}

func mask(token string) string {
	if len(token) <= 12 {
		return "****"
	}
	return token[:6] + "..." + token[len(token)-4:]
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: tokenstore set <token> | show | clear")
}
