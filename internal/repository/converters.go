package repository

import (
	"mvpduo/internal/domain"
	"mvpduo/internal/repository/models"
	"mvpduo/internal/util"
)

func toDomainProfile(m *models.UserProfile) *domain.UserProfile {
	if m == nil {
		return nil
	}
	return &domain.UserProfile{
		ID:                     m.ID,
		Email:                  util.NullStringToString(m.Email),
		Kidem:                  m.CurrentKidem,
		Level:                  m.CurrentLevel,
		Bolum:                  m.CurrentBolum,
		TotalQuestionsAnswered: m.TotalQuestionsAnswered,
		TotalCorrectAnswers:    m.TotalCorrectAnswers,
		TotalPoints:            m.TotalPoints,
		StreakDays:             m.StreakDays,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func fromDomainProfile(p *domain.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}
	return &models.UserProfile{
		ID:                     p.ID,
		Email:                  util.StringToNullString(p.Email),
		CurrentKidem:           p.Kidem,
		CurrentLevel:           p.Level,
		CurrentBolum:           p.Bolum,
		TotalQuestionsAnswered: p.TotalQuestionsAnswered,
		TotalCorrectAnswers:    p.TotalCorrectAnswers,
		TotalPoints:            p.TotalPoints,
		StreakDays:             p.StreakDays,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

func toDomainPreferences(m *models.ExamPreferences) *domain.ExamPreferences {
	return &domain.ExamPreferences{
		UserID:        m.UserID,
		TYTEnabled:    m.TYTEnabled,
		AYTSayEnabled: m.AYTSayEnabled,
		AYTEAEnabled:  m.AYTEAEnabled,
		AYTSozEnabled: m.AYTSozEnabled,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromDomainPreferences(p *domain.ExamPreferences) *models.ExamPreferences {
	return &models.ExamPreferences{
		UserID:        p.UserID,
		TYTEnabled:    p.TYTEnabled,
		AYTSayEnabled: p.AYTSayEnabled,
		AYTEAEnabled:  p.AYTEAEnabled,
		AYTSozEnabled: p.AYTSozEnabled,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:            m.ID,
		ExamType:      domain.ExamTrack(m.ExamType),
		Division:      util.NullStringToString(m.Division),
		Kidem:         m.Kidem,
		Level:         m.Level,
		Bolum:         m.Bolum,
		Text:          m.QuestionText,
		Options:       []string(m.Options),
		CorrectOption: m.CorrectOption,
		Explanation:   util.NullStringToString(m.Explanation),
		Status:        domain.QuestionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func fromDomainQuestion(q *domain.Question) *models.Question {
	return &models.Question{
		ID:            q.ID,
		ExamType:      string(q.ExamType),
		Division:      util.StringToNullString(q.Division),
		Kidem:         q.Kidem,
		Level:         q.Level,
		Bolum:         q.Bolum,
		QuestionText:  q.Text,
		Options:       models.StringSlice(q.Options),
		CorrectOption: q.CorrectOption,
		Explanation:   util.StringToNullString(q.Explanation),
		Status:        string(q.Status),
		CreatedAt:     q.CreatedAt,
	}
}

func toDomainAchievement(m *models.Achievement) domain.Achievement {
	return domain.Achievement{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         m.AchievementType,
		Name:         m.AchievementName,
		PointsEarned: m.PointsEarned,
		CreatedAt:    m.CreatedAt,
	}
}

func toDomainProgress(m *models.UserProgress) *domain.ProgressMirror {
	return &domain.ProgressMirror{
		UserID:    m.UserID,
		Unit:      domain.Position{Kidem: m.Kidem, Level: m.Level, Bolum: m.Bolum},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
