package bot

import (
	"log"
	"sync"
	"time"

	"discord-guard/guard"
	"discord-guard/model"
	"discord-guard/tasks"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// BotProvider defines the methods the scheduler needs from the Bot.
type BotProvider interface {
	GetConfig() *model.Config
	GetDB() *sqlx.DB
	GetSession() *discordgo.Session
	GetGuard() *guard.Service
}

// Scheduler manages all scheduled tasks.
type Scheduler struct {
	bot             BotProvider
	done            chan struct{}
	wg              sync.WaitGroup
	reconcileTicker *time.Ticker
}

// NewScheduler creates a new scheduler.
func NewScheduler(bot BotProvider) *Scheduler {
	return &Scheduler{
		bot:  bot,
		done: make(chan struct{}),
	}
}

// Start begins all scheduled tasks.
func (s *Scheduler) Start() {
	s.wg.Add(2)

	// Reconciliation loop for expired punishments
	go s.startReconcileLoop()

	// Daily guard report
	go s.startDailyTasks()
}

// Stop terminates all scheduled tasks gracefully.
func (s *Scheduler) Stop() {
	log.Println("Stopping scheduler...")
	close(s.done)
	s.wg.Wait()
	log.Println("Scheduler stopped.")
}

func (s *Scheduler) startReconcileLoop() {
	defer s.wg.Done()
	s.reconcileTicker = time.NewTicker(s.bot.GetConfig().Guard.ReconcileInterval)
	defer s.reconcileTicker.Stop()

	for {
		select {
		case <-s.reconcileTicker.C:
			s.bot.GetGuard().Sweep()
		case <-s.done:
			return
		}
	}
}

func (s *Scheduler) startDailyTasks() {
	defer s.wg.Done()
	runHours := []int{9} // 9 AM

	for {
		now := time.Now()
		var next time.Time

		for _, h := range runHours {
			t := time.Date(now.Year(), now.Month(), now.Day(), h, 0, 0, 0, now.Location())
			if now.Before(t) {
				next = t
				break
			}
		}

		if next.IsZero() {
			tomorrow := now.Add(24 * time.Hour)
			next = time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), runHours[0], 0, 0, 0, now.Location())
		}

		log.Printf("Next daily guard report scheduled for: %v", next)
		select {
		case <-time.After(next.Sub(now)):
			s.runDailyGuardReport()
		case <-s.done:
			return
		}
	}
}

func (s *Scheduler) runDailyGuardReport() {
	log.Println("Running daily guard report...")
	cfg := s.bot.GetConfig()
	if cfg.LogChannelID == "" {
		return
	}

	guilds, err := s.bot.GetSession().UserGuilds(100, "", "", false)
	if err != nil {
		log.Printf("Could not fetch guilds for daily report: %v", err)
		return
	}
	for _, guild := range guilds {
		go tasks.SendGuardReport(s.bot.GetSession(), s.bot.GetDB(), cfg.LogChannelID, guild.ID, 24*time.Hour)
	}
}
