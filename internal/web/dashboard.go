package web

import (
	"net/http"

	"github.com/jonathan/skillsync/internal/dashboard"
	"github.com/jonathan/skillsync/internal/session"
	"github.com/jonathan/skillsync/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// dashboardView is the dashboard page below the navigation bar.
type dashboardView struct {
	Name            string
	Initial         string
	TechnicalSkills []string
	CareerGoals     []string
	Overview        dashboard.Overview
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	st, ok := s.guard(w, r, session.RouteDashboard)
	if !ok {
		return
	}

	var (
		me     *types.UserResponse
		stored *types.ProfileResponse
		api    = s.client(st)
		g, ctx = errgroup.WithContext(r.Context())
	)
	g.Go(func() error {
		var err error
		me, err = api.Me(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stored, err = api.FetchProfile(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if s.signOutIfRejected(w, r, err) {
			return
		}
		s.logger.Warn("failed to load dashboard data", zap.Error(err))
		s.notify(w, r, errorNotice(err, loadFailedTitle, loadFailedMessage))
	}

	view := dashboardView{Overview: dashboard.Static()}
	var user *types.User
	switch {
	case me != nil:
		user = &me.User
	case stored != nil:
		user = &stored.User
	}
	if user != nil {
		view.Name = user.Name()
		if view.Name == "" {
			view.Name = user.Email
		}
	}
	view.Initial = user.Initial()
	if stored != nil {
		data := types.DecodeProfileData(stored.Data)
		view.TechnicalSkills = data.TechnicalSkills
		view.CareerGoals = data.CareerGoals
	}

	s.render(w, r, http.StatusOK, "dashboard", pageData{Title: "Dashboard", User: user, Nav: true, Content: view})
}
