// Package service orchestrates the lead consolidation pipeline: it snapshots
// the five source streams, runs the pure engine over the snapshot, and owns
// the two write operations on follow-up interactions.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AmrAnter44/sys-body-sub004/internal/events"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/adapters"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/domain"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/engine"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/ports"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/repository"
	"github.com/AmrAnter44/sys-body-sub004/internal/followups/transport"
	"github.com/AmrAnter44/sys-body-sub004/platform/apperr"
	"github.com/AmrAnter44/sys-body-sub004/platform/logger"
	"github.com/AmrAnter44/sys-body-sub004/platform/phone"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Repository is the persistence interface needed by the service.
// This is a consumer-driven interface; the pgx implementation lives in
// the repository package.
type Repository interface {
	Create(ctx context.Context, interaction domain.FollowUpInteraction) (domain.FollowUpInteraction, error)
	List(ctx context.Context) ([]domain.FollowUpInteraction, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.FollowUpInteraction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LeaderboardCache caches computed leaderboard snapshots. Optional.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]engine.SalesStat, bool)
	Set(ctx context.Context, stats []engine.SalesStat)
	Invalidate(ctx context.Context)
}

// Sources bundles the four read-side collaborators feeding the engine.
// The fifth stream, persisted interactions, comes from Repository.
type Sources struct {
	Visitors    ports.VisitorSource
	Members     ports.MemberSource
	DayUse      ports.DayUseSource
	Invitations ports.InvitationSource
}

// Service runs the consolidation pipeline and the interaction writes.
type Service struct {
	sources        Sources
	repo           Repository
	cache          LeaderboardCache
	bus            events.Bus
	log            *logger.Logger
	now            func() time.Time
	defaultHorizon int
}

// New creates the follow-ups service.
func New(sources Sources, repo Repository, cache LeaderboardCache, bus events.Bus, defaultHorizonDays int, log *logger.Logger) *Service {
	if defaultHorizonDays < 1 {
		defaultHorizonDays = adapters.DefaultExpiringHorizonDays
	}
	return &Service{
		sources:        sources,
		repo:           repo,
		cache:          cache,
		bus:            bus,
		log:            log,
		now:            time.Now,
		defaultHorizon: defaultHorizonDays,
	}
}

// SetClock overrides the time source. Tests use this to supply fixed dates.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// snapshot holds one request's view of every input stream. A failed source
// read degrades that source to empty so a single outage never hides the rest
// of the worklist.
type snapshot struct {
	visitors     []ports.Visitor
	members      []ports.Member
	dayUse       []ports.DayUseRecord
	invitations  []ports.Invitation
	interactions []domain.FollowUpInteraction
}

// loadSnapshot reads all five streams in parallel and waits for every read to
// finish before consolidation starts. Errors degrade, never propagate.
func (s *Service) loadSnapshot(ctx context.Context) snapshot {
	var snap snapshot
	var g errgroup.Group

	g.Go(func() error {
		records, err := s.sources.Visitors.ListVisitors(ctx)
		if err != nil {
			s.degrade("visitors", err)
			return nil
		}
		snap.visitors = records
		return nil
	})
	g.Go(func() error {
		records, err := s.sources.Members.ListMembers(ctx)
		if err != nil {
			s.degrade("members", err)
			return nil
		}
		snap.members = records
		return nil
	})
	g.Go(func() error {
		records, err := s.sources.DayUse.ListDayUseRecords(ctx)
		if err != nil {
			s.degrade("day-use", err)
			return nil
		}
		snap.dayUse = records
		return nil
	})
	g.Go(func() error {
		records, err := s.sources.Invitations.ListInvitations(ctx)
		if err != nil {
			s.degrade("invitations", err)
			return nil
		}
		snap.invitations = records
		return nil
	})
	g.Go(func() error {
		records, err := s.repo.List(ctx)
		if err != nil {
			s.degrade("interactions", err)
			return nil
		}
		snap.interactions = records
		return nil
	})

	// Goroutines always return nil; Wait is purely the barrier.
	_ = g.Wait()
	return snap
}

func (s *Service) degrade(source string, err error) {
	if s.log != nil {
		s.log.SourceDegraded(source, apperr.Unavailable(source+" source unavailable", err))
	}
}

// consolidate runs the adapters over a snapshot and attributes history.
// The returned set is the pre-conversion-filter collection; the active phone
// set is computed once here, from the same member snapshot.
func (s *Service) consolidate(snap snapshot, horizonDays int, now time.Time) ([]domain.Lead, map[string]struct{}) {
	if horizonDays < 1 {
		horizonDays = s.defaultHorizon
	}

	all := engine.Consolidate(
		adapters.VisitorLeads(snap.visitors),
		adapters.ExpiredMemberLeads(snap.members, now),
		adapters.ExpiringMemberLeads(snap.members, now, horizonDays),
		adapters.DayUseLeads(snap.dayUse),
		adapters.InvitationLeads(snap.invitations),
	)

	index := engine.BuildHistoryIndex(snap.interactions, phone.Normalize)
	all = engine.Attribute(all, index, now)

	return all, engine.ActivePhoneSet(snap.members)
}

// GetConsolidatedLeads is the engine's main query surface: the filtered,
// prioritized, paginated worklist. me is the current salesperson's name for
// the "mine" quick filters.
func (s *Service) GetConsolidatedLeads(ctx context.Context, query transport.LeadListQuery, me string) (transport.LeadListResponse, error) {
	filters, err := toFilters(query, me)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	now := s.now()
	snap := s.loadSnapshot(ctx)
	all, active := s.consolidate(snap, filters.ExpiringHorizonDays, now)

	visible := engine.FilterConverted(all, active)
	filtered := engine.ApplyFilters(visible, filters)
	sorted := engine.SortByPriority(filtered)

	page, pageSize := query.Page, query.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	items, total := engine.Paginate(sorted, page, pageSize)

	responses := make([]transport.LeadResponse, len(items))
	for i, lead := range items {
		responses[i] = toLeadResponse(lead)
	}

	return transport.LeadListResponse{
		Items:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLeaderboard aggregates conversion and workload stats per salesperson.
// The computation runs over the pre-conversion-filter set: conversion credit
// needs exactly the leads the worklist hides.
func (s *Service) GetLeaderboard(ctx context.Context) ([]transport.SalesStatResponse, error) {
	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx); ok {
			return toSalesStatResponses(stats), nil
		}
	}

	now := s.now()
	snap := s.loadSnapshot(ctx)
	all, active := s.consolidate(snap, s.defaultHorizon, now)

	stats := engine.Leaderboard(all, snap.interactions, active, now)

	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return toSalesStatResponses(stats), nil
}

// History returns the full interaction history for a lead phone, newest first.
func (s *Service) History(ctx context.Context, rawPhone string) (transport.HistoryResponse, error) {
	key := phone.Normalize(rawPhone)
	if key == "" {
		return transport.HistoryResponse{}, apperr.Validation("phone is required").WithDetails(map[string]string{"phone": rawPhone})
	}

	interactions, err := s.repo.List(ctx)
	if err != nil {
		return transport.HistoryResponse{}, apperr.Unavailable("interaction history unavailable", err)
	}

	index := engine.BuildHistoryIndex(interactions, phone.Normalize)
	entries := index.History(key)

	items := make([]transport.InteractionResponse, len(entries))
	for i, entry := range entries {
		items[i] = transport.ToInteractionResponse(entry)
	}
	return transport.HistoryResponse{Items: items}, nil
}

// CreateInteraction logs a new follow-up against a lead. The lead may be a
// persisted visitor row or a synthesized view; either way its phone is
// resolved from the current consolidated set and denormalized onto the stored
// interaction.
func (s *Service) CreateInteraction(ctx context.Context, req transport.CreateInteractionRequest) (transport.InteractionResponse, error) {
	leadID := strings.TrimSpace(req.LeadID)
	if leadID == "" {
		return transport.InteractionResponse{}, apperr.Validation("leadId is required")
	}

	salesName := strings.TrimSpace(req.SalesName)
	if salesName == "" {
		return transport.InteractionResponse{}, apperr.Validation("salesName is required")
	}

	notes := strings.TrimSpace(req.Notes)
	if len(notes) > 2000 {
		return transport.InteractionResponse{}, apperr.Validation("notes must be at most 2000 characters")
	}

	result := domain.Result(req.Result)
	if result != domain.ResultNone && !domain.ValidResults[result] {
		return transport.InteractionResponse{}, apperr.Validation("invalid result").WithDetails(map[string]string{"result": req.Result})
	}

	now := s.now()
	snap := s.loadSnapshot(ctx)
	all, _ := s.consolidate(snap, s.defaultHorizon, now)

	lead, found := findLead(all, leadID)
	if !found {
		return transport.InteractionResponse{}, apperr.NotFound("lead not found").WithDetails(map[string]string{"leadId": leadID})
	}

	created, err := s.repo.Create(ctx, domain.FollowUpInteraction{
		LeadID:           leadID,
		LeadPhone:        lead.Phone,
		Notes:            notes,
		Contacted:        req.Contacted,
		Result:           result,
		NextFollowUpDate: req.NextFollowUpDate,
		SalesName:        salesName,
	})
	if err != nil {
		return transport.InteractionResponse{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.FollowUpLogged{
			BaseEvent:        events.NewBaseEvent(),
			InteractionID:    created.ID,
			LeadID:           created.LeadID,
			LeadPhone:        created.LeadPhone,
			SalesName:        created.SalesName,
			NextFollowUpDate: created.NextFollowUpDate,
		})
	}

	return transport.ToInteractionResponse(created), nil
}

// DeleteInteraction removes a persisted interaction. Synthesized lead ids are
// rejected with a validation error: a computed view has nothing to delete,
// and silently succeeding would hide that from the user.
func (s *Service) DeleteInteraction(ctx context.Context, id string) error {
	if domain.IsSynthesizedID(id) {
		return apperr.Validation("cannot delete a synthesized lead entry").WithDetails(map[string]string{"id": id})
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return apperr.Validation("invalid interaction id").WithDetails(map[string]string{"id": id})
	}

	if err := s.repo.Delete(ctx, parsed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("interaction not found").WithDetails(map[string]string{"id": id})
		}
		return err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	if s.bus != nil {
		s.bus.Publish(ctx, events.FollowUpDeleted{
			BaseEvent:     events.NewBaseEvent(),
			InteractionID: parsed,
		})
	}
	return nil
}

// GetInteraction returns one persisted interaction by id.
func (s *Service) GetInteraction(ctx context.Context, id uuid.UUID) (domain.FollowUpInteraction, error) {
	interaction, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.FollowUpInteraction{}, apperr.NotFound("interaction not found")
		}
		return domain.FollowUpInteraction{}, err
	}
	return interaction, nil
}

func findLead(leads []domain.Lead, id string) (domain.Lead, bool) {
	for _, lead := range leads {
		if lead.ID == id {
			return lead, true
		}
	}
	return domain.Lead{}, false
}

func toFilters(query transport.LeadListQuery, me string) (engine.Filters, error) {
	quick := engine.QuickFilter(query.Quick)
	if quick == "" {
		quick = engine.QuickAll
	}
	if !engine.ValidQuickFilters[quick] {
		return engine.Filters{}, apperr.Validation("invalid quick filter").WithDetails(map[string]string{"quick": query.Quick})
	}

	return engine.Filters{
		Search:              query.Search,
		Source:              domain.Source(query.Source),
		Priority:            domain.Priority(query.Priority),
		Result:              domain.Result(query.Result),
		Contacted:           query.Contacted,
		Quick:               quick,
		Me:                  me,
		ExpiringHorizonDays: query.Horizon,
	}, nil
}

func toLeadResponse(lead domain.Lead) transport.LeadResponse {
	return transport.LeadResponse{
		ID:               lead.ID,
		Name:             lead.Name,
		Phone:            lead.Phone,
		PhoneDisplay:     phone.FormatDisplay(lead.Phone),
		Source:           string(lead.Source),
		DaysUntilExpiry:  lead.DaysUntilExpiry,
		SalesName:        lead.SalesName,
		LastNote:         lead.LastNote,
		Contacted:        lead.Contacted,
		Result:           string(lead.Result),
		NextFollowUpDate: lead.NextFollowUpDate,
		Priority:         string(lead.Priority),
		Synthesized:      lead.Synthesized(),
	}
}

func toSalesStatResponses(stats []engine.SalesStat) []transport.SalesStatResponse {
	responses := make([]transport.SalesStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = transport.SalesStatResponse{
			SalesName:      stat.SalesName,
			TotalFollowUps: stat.TotalFollowUps,
			Conversions:    stat.Conversions,
			ConversionRate: stat.ConversionRate,
			OverdueCount:   stat.OverdueCount,
			TodayCount:     stat.TodayCount,
			ContactedToday: stat.ContactedToday,
		}
	}
	return responses
}
