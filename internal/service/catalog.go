package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/chesschain/chesschain/internal/database/repository"
)

const (
	WalletNetwork = "BNB Chain"
	SwapFrom      = "BNB"
	SwapTo        = "CHECK"
)

// Catalog is every piece of static content the screens show.
type Catalog struct {
	Offers    []repository.MatchOffer
	Highlight *repository.Highlight
	Openings  []repository.Opening
	Wallet    repository.WalletProfile
	Deposits  []repository.Deposit
	Swap      repository.SwapPair
	Liquidity []repository.LiquidityQuote
	Security  repository.SecurityReport
}

// CatalogService loads the static catalog.
type CatalogService struct {
	Offers   *repository.OfferRepo
	Content  *repository.ContentRepo
	Wallet   *repository.WalletRepo
	Swap     *repository.SwapRepo
	Security *repository.SecurityRepo
}

// NewCatalogService wires every catalog repository onto db.
func NewCatalogService(db *sql.DB) *CatalogService {
	return &CatalogService{
		Offers:   repository.NewOfferRepo(db),
		Content:  repository.NewContentRepo(db),
		Wallet:   repository.NewWalletRepo(db),
		Swap:     repository.NewSwapRepo(db),
		Security: repository.NewSecurityRepo(db),
	}
}

func (s *CatalogService) Load(ctx context.Context) (Catalog, error) {
	var c Catalog
	var err error

	if c.Offers, err = s.Offers.List(ctx); err != nil {
		return Catalog{}, fmt.Errorf("load offers: %w", err)
	}
	if c.Highlight, err = s.Content.Highlight(ctx); err != nil {
		return Catalog{}, fmt.Errorf("load highlight: %w", err)
	}
	if c.Openings, err = s.Content.Openings(ctx); err != nil {
		return Catalog{}, fmt.Errorf("load openings: %w", err)
	}

	wallet, err := s.Wallet.Profile(ctx, WalletNetwork)
	if err != nil {
		return Catalog{}, fmt.Errorf("load wallet profile: %w", err)
	}
	if wallet == nil {
		return Catalog{}, fmt.Errorf("load wallet profile: %s not seeded", WalletNetwork)
	}
	c.Wallet = *wallet
	if c.Deposits, err = s.Wallet.Deposits(ctx, WalletNetwork); err != nil {
		return Catalog{}, fmt.Errorf("load deposits: %w", err)
	}

	pair, err := s.Swap.Pair(ctx, SwapFrom, SwapTo)
	if err != nil {
		return Catalog{}, fmt.Errorf("load swap pair: %w", err)
	}
	if pair == nil {
		return Catalog{}, fmt.Errorf("load swap pair: %s/%s not seeded", SwapFrom, SwapTo)
	}
	c.Swap = *pair
	if c.Liquidity, err = s.Swap.Liquidity(ctx, SwapFrom, SwapTo); err != nil {
		return Catalog{}, fmt.Errorf("load liquidity: %w", err)
	}

	report, err := s.Security.Report(ctx)
	if err != nil {
		return Catalog{}, fmt.Errorf("load security report: %w", err)
	}
	if report != nil {
		c.Security = *report
	}
	return c, nil
}
