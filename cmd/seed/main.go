// Command seed loads a demo user and a published demo portfolio so a fresh
// environment has something to look at. Safe to run repeatedly.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	impl "portfolio/internal/service/impl"
	"portfolio/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.OpenGorm(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		slog.Error("gorm open", "error", err)
		os.Exit(1)
	}
	if err := gdb.AutoMigrate(&domain.User{}, &domain.Portfolio{}); err != nil {
		slog.Error("automigrate", "error", err)
		os.Exit(1)
	}

	pw := impl.NewPasswordServiceArgon2id()
	hash, err := pw.Hash("password123")
	if err != nil {
		slog.Error("hash password", "error", err)
		os.Exit(1)
	}

	name := "Demo User"
	user := domain.User{
		Email:    "demo@portfolio.com",
		Password: hash,
		Name:     &name,
		Status:   domain.StatusActive,
	}
	if err := gdb.Where(domain.User{Email: user.Email}).
		Attrs(user).FirstOrCreate(&user).Error; err != nil {
		slog.Error("seed user", "error", err)
		os.Exit(1)
	}
	slog.Info("seeded user", "email", user.Email, "id", user.ID)

	pf := domain.Portfolio{
		Name:      "Demo Portfolio",
		Slug:      "demo-portfolio",
		UserID:    user.ID,
		Published: true,
		Status:    domain.StatusActive,
		Theme: domain.Theme{
			"primaryColor":    "#6366f1",
			"secondaryColor":  "#8b5cf6",
			"accentColor":     "#f472b6",
			"backgroundColor": "#0f172a",
			"textColor":       "#f8fafc",
			"fontFamily":      "Inter",
			"borderRadius":    "medium",
		},
		Sections: demoSections(),
	}
	if err := gdb.Where(domain.Portfolio{Slug: pf.Slug, Name: pf.Name}).
		Attrs(pf).FirstOrCreate(&pf).Error; err != nil {
		slog.Error("seed portfolio", "error", err)
		os.Exit(1)
	}
	slog.Info("seeded portfolio", "slug", pf.Slug, "id", pf.ID)
}

func demoSections() domain.SectionList {
	return domain.SectionList{
		{
			ID: "hero-1", Type: domain.SectionHero, Order: 0, Visible: true,
			Data: raw(map[string]any{
				"name":            "Demo User",
				"title":           "Full Stack Developer",
				"subtitle":        "Building amazing web experiences with modern technologies",
				"backgroundStyle": "gradient",
				"backgroundColor": "#0f172a",
				"gradientColors":  []string{"#6366f1", "#8b5cf6", "#d946ef"},
			}),
		},
		{
			ID: "about-1", Type: domain.SectionAbout, Order: 1, Visible: true,
			Data: raw(map[string]any{
				"title":       "About Me",
				"description": "I am a passionate developer with expertise in React, Node.js, and modern web technologies.",
				"highlights":  []string{"React Expert", "Node.js Developer", "UI/UX Enthusiast"},
			}),
		},
		{
			ID: "skills-1", Type: domain.SectionSkills, Order: 2, Visible: true,
			Data: raw(map[string]any{
				"title":        "Skills & Technologies",
				"displayStyle": "bars",
				"skills": []map[string]any{
					{"id": "skill-1", "name": "React", "level": 90, "category": "Frontend"},
					{"id": "skill-2", "name": "TypeScript", "level": 85, "category": "Frontend"},
					{"id": "skill-3", "name": "Node.js", "level": 80, "category": "Backend"},
					{"id": "skill-4", "name": "PostgreSQL", "level": 75, "category": "Backend"},
				},
			}),
		},
		{
			ID: "projects-1", Type: domain.SectionProjects, Order: 3, Visible: true,
			Data: raw(map[string]any{
				"title":  "My Projects",
				"layout": "grid",
				"projects": []map[string]any{
					{
						"id":          "project-1",
						"title":       "Portfolio Builder",
						"description": "Drag-and-drop portfolio builder with live preview.",
						"tags":        []string{"React", "TypeScript"},
					},
				},
			}),
		},
		{
			ID: "contact-1", Type: domain.SectionContact, Order: 4, Visible: true,
			Data: raw(map[string]any{
				"title": "Get In Touch",
				"email": "demo@portfolio.com",
				"socialLinks": []map[string]any{
					{"id": "social-1", "platform": "github", "url": "https://github.com/demo"},
				},
			}),
		},
	}
}

func raw(v any) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
