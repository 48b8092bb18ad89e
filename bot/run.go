package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"discord-guard/commands"
	"discord-guard/metrics"
	"discord-guard/utils"
)

func (b *Bot) Run() {
	err := b.Session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}

	log.Println("Registering guard commands for all guilds...")
	guilds, err := b.Session.UserGuilds(100, "", "", false)
	if err != nil {
		log.Printf("Could not fetch guilds: %v", err)
	} else {
		cmds := commands.All()
		for _, guild := range guilds {
			b.RefreshCommands(guild.ID, cmds)
		}
	}

	// Start the reconciliation loop and report tasks
	b.GetScheduler().Start()

	if addr := b.GetConfig().Guard.MetricsAddr; addr != "" {
		go func() {
			log.Printf("Serving metrics on %s", addr)
			if err := metrics.Serve(addr); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	utils.LogInfo(b.Session, b.GetConfig().LogChannelID, "System", "Startup", "Guard is watching for structural changes.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}
