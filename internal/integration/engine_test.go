package integration

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"bitrush_backend/internal/domain"
	"bitrush_backend/internal/game"
	"bitrush_backend/internal/repository"
	"bitrush_backend/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// These tests need a migrated database; they skip unless DATABASE_URL is set.

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func newPlayer(t *testing.T, pool *pgxpool.Pool, mining *service.MiningService) *domain.Player {
	t.Helper()
	ctx := context.Background()
	users := repository.NewUserRepository(pool)
	p := &domain.Player{
		AccountID: fmt.Sprintf("it-%d-%d", time.Now().UnixNano(), rand.Int31()),
		Username:  "integration",
	}
	if err := users.Create(ctx, p); err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, p.ID)
	})
	if err := mining.EnsureSeeded(ctx, p.ID); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return p
}

func TestTapAndUpgradeFlow(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	cards := service.NewCardService(pool, progress)

	p := newPlayer(t, pool, mining)

	st, err := mining.Tap(ctx, p.ID)
	if err != nil {
		t.Fatalf("tap: %v", err)
	}
	if st.Coins != 1001 || st.Energy != 99 {
		t.Errorf("after tap: coins=%d energy=%d, want 1001/99", st.Coins, st.Energy)
	}

	st, card, err := cards.Upgrade(ctx, p.ID, "Basic Miner")
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if st.Coins != 1 || st.MiningRate != 3 || st.XP != 150 {
		t.Errorf("after upgrade: coins=%d rate=%d xp=%d, want 1/3/150", st.Coins, st.MiningRate, st.XP)
	}
	if card.Level != 1 || card.UnlockTimer == nil {
		t.Errorf("card level=%d timer=%v, want 1 and a running cooldown", card.Level, card.UnlockTimer)
	}

	// Cooldown blocks a repurchase.
	if _, _, err := cards.Upgrade(ctx, p.ID, "Basic Miner"); err != service.ErrCooldownActive {
		t.Errorf("upgrade during cooldown: got %v, want ErrCooldownActive", err)
	}

	// Too-expensive card bounces without mutating anything.
	if _, _, err := cards.Upgrade(ctx, p.ID, "Nano Processor"); err != service.ErrInsufficientFunds {
		t.Errorf("unaffordable upgrade: got %v, want ErrInsufficientFunds", err)
	}
	state, err := mining.GetState(ctx, p.ID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Stats.Coins != 1 {
		t.Errorf("failed purchase changed coins to %d", state.Stats.Coins)
	}
}

func TestWheelSpinConservation(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	wheel := service.NewWheelService(pool, progress, rand.New(rand.NewSource(99)))

	p := newPlayer(t, pool, mining)

	before, err := mining.GetState(ctx, p.ID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	spins := before.Stats.Spins

	for spins > 0 {
		res, err := wheel.Spin(ctx, p.ID)
		if err != nil {
			t.Fatalf("spin: %v", err)
		}
		want := spins - 1
		if res.Prize.Reward.Type == domain.RewardSpins {
			want += res.Prize.Reward.Amount
		}
		if res.Stats.Spins != want {
			t.Fatalf("spins=%d after prize %q, want %d", res.Stats.Spins, res.Prize.Label, want)
		}
		spins = res.Stats.Spins
	}

	if _, err := wheel.Spin(ctx, p.ID); err != service.ErrNoSpinsAvailable {
		t.Errorf("spin with no tokens: got %v, want ErrNoSpinsAvailable", err)
	}
}

func TestFloatingGatewayCascade(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	floating := service.NewFloatingCardService(pool, progress)

	p := newPlayer(t, pool, mining)

	// Free slot claims work once.
	if _, err := floating.Claim(ctx, p.ID, domain.CollectionExplorerStash, 1); err != nil {
		t.Fatalf("claim slot 1: %v", err)
	}
	if _, err := floating.Claim(ctx, p.ID, domain.CollectionExplorerStash, 1); err != service.ErrAlreadyClaimed {
		t.Errorf("double claim: got %v, want ErrAlreadyClaimed", err)
	}

	// Locked slot refuses until the gateway is bought.
	if _, err := floating.Claim(ctx, p.ID, domain.CollectionExplorerStash, 7); err != service.ErrInvalidState {
		t.Errorf("locked claim: got %v, want ErrInvalidState", err)
	}

	// No TON yet.
	if _, err := floating.PurchaseGateway(ctx, p.ID, domain.CollectionExplorerStash); err != service.ErrInsufficientFunds {
		t.Errorf("broke gateway buy: got %v, want ErrInsufficientFunds", err)
	}

	if _, err := pool.Exec(ctx,
		`UPDATE user_stats SET ton_units = $1 WHERE user_id = $2`,
		int64(game.GatewayPriceTonUnits), p.ID); err != nil {
		t.Fatalf("fund player: %v", err)
	}

	st, err := floating.PurchaseGateway(ctx, p.ID, domain.CollectionExplorerStash)
	if err != nil {
		t.Fatalf("gateway buy: %v", err)
	}
	if st.TonUnits != 0 {
		t.Errorf("ton after purchase = %d, want 0", st.TonUnits)
	}

	slots, err := floating.List(ctx, p.ID, domain.CollectionExplorerStash)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, s := range slots {
		if s.Position > game.GatewayPosition && !s.IsUnlocked {
			t.Errorf("slot %d still locked after gateway purchase", s.Position)
		}
	}

	// Cascaded slot now claims.
	if _, err := floating.Claim(ctx, p.ID, domain.CollectionExplorerStash, 7); err != nil {
		t.Errorf("claim cascaded slot: %v", err)
	}
}

func TestDailyRewardClaim(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	daily := service.NewDailyRewardService(pool, progress)

	p := newPlayer(t, pool, mining)

	_, day, err := daily.Claim(ctx, p.ID)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if day.Day != 1 || day.StreakCount != 1 {
		t.Errorf("claimed day=%d streak=%d, want 1/1", day.Day, day.StreakCount)
	}

	if _, _, err := daily.Claim(ctx, p.ID); err != service.ErrAlreadyClaimed {
		t.Errorf("same-day reclaim: got %v, want ErrAlreadyClaimed", err)
	}
}

func TestMissionLifecycle(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	missions := service.NewMissionService(pool)
	repo := repository.NewMissionRepository(pool)

	p := newPlayer(t, pool, mining)

	if err := repo.AddProgress(ctx, p.ID, domain.MissionTaps, 200); err != nil {
		t.Fatalf("add progress: %v", err)
	}
	m, err := repo.GetByName(ctx, p.ID, "Tap Frenzy")
	if err != nil {
		t.Fatalf("get mission: %v", err)
	}
	if m.CurrentValue != 200 || m.IsCompleted {
		t.Errorf("partial progress: current=%d completed=%v, want 200/false", m.CurrentValue, m.IsCompleted)
	}
	if _, err := missions.ClaimMission(ctx, p.ID, "Tap Frenzy"); err != service.ErrNotCompleted {
		t.Errorf("early claim: got %v, want ErrNotCompleted", err)
	}

	// Overshooting the target clamps the counter and flips completion.
	if err := repo.AddProgress(ctx, p.ID, domain.MissionTaps, 400); err != nil {
		t.Fatalf("add progress: %v", err)
	}
	m, err = repo.GetByName(ctx, p.ID, "Tap Frenzy")
	if err != nil {
		t.Fatalf("get mission: %v", err)
	}
	if m.CurrentValue != 500 || !m.IsCompleted {
		t.Errorf("overshoot: current=%d completed=%v, want 500/true", m.CurrentValue, m.IsCompleted)
	}

	st, err := missions.ClaimMission(ctx, p.ID, "Tap Frenzy")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if st.Coins != 3_500 {
		t.Errorf("coins after claim = %d, want 3500", st.Coins)
	}
	if _, err := missions.ClaimMission(ctx, p.ID, "Tap Frenzy"); err != service.ErrAlreadyClaimed {
		t.Errorf("reclaim: got %v, want ErrAlreadyClaimed", err)
	}

	// Completed-and-claimed missions ignore further progress.
	if err := repo.AddProgress(ctx, p.ID, domain.MissionTaps, 50); err != nil {
		t.Fatalf("add progress: %v", err)
	}
	m, err = repo.GetByName(ctx, p.ID, "Tap Frenzy")
	if err != nil {
		t.Fatalf("get mission: %v", err)
	}
	if m.CurrentValue != 500 || !m.IsClaimed {
		t.Errorf("claimed mission moved: current=%d claimed=%v", m.CurrentValue, m.IsClaimed)
	}

	// Once the cooldown passes, the next read re-arms the mission.
	if _, err := pool.Exec(ctx,
		`UPDATE daily_missions SET unlock_timer = NOW() - interval '1 minute'
		 WHERE user_id = $1 AND mission_name = 'Tap Frenzy'`, p.ID); err != nil {
		t.Fatalf("backdate cooldown: %v", err)
	}
	list, err := missions.ListMissions(ctx, p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, lm := range list {
		if lm.MissionName != "Tap Frenzy" {
			continue
		}
		if lm.CurrentValue != 0 || lm.IsCompleted || lm.IsClaimed || lm.UnlockTimer != nil {
			t.Errorf("reset mission: current=%d completed=%v claimed=%v timer=%v",
				lm.CurrentValue, lm.IsCompleted, lm.IsClaimed, lm.UnlockTimer)
		}
	}
}

func TestAchievementProgressAndClaim(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	missions := service.NewMissionService(pool)
	repo := repository.NewAchievementRepository(pool)

	p := newPlayer(t, pool, mining)

	if err := repo.SetProgress(ctx, p.ID, domain.MetricLevel, 3); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	if _, err := missions.ClaimAchievement(ctx, p.ID, "Getting Serious"); err != service.ErrNotCompleted {
		t.Errorf("early claim: got %v, want ErrNotCompleted", err)
	}

	if err := repo.SetProgress(ctx, p.ID, domain.MetricLevel, 7); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	a, err := repo.GetByName(ctx, p.ID, "Getting Serious")
	if err != nil {
		t.Fatalf("get achievement: %v", err)
	}
	if a.CurrentValue != 5 || !a.IsCompleted {
		t.Errorf("past target: current=%d completed=%v, want 5/true", a.CurrentValue, a.IsCompleted)
	}

	st, err := missions.ClaimAchievement(ctx, p.ID, "Getting Serious")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if st.Stars != 10 {
		t.Errorf("stars after claim = %d, want 10", st.Stars)
	}
	if _, err := missions.ClaimAchievement(ctx, p.ID, "Getting Serious"); err != service.ErrAlreadyClaimed {
		t.Errorf("reclaim: got %v, want ErrAlreadyClaimed", err)
	}

	// Metrics only move forward.
	if err := repo.SetProgress(ctx, p.ID, domain.MetricCoins, 100); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	if err := repo.SetProgress(ctx, p.ID, domain.MetricCoins, 40); err != nil {
		t.Fatalf("set progress: %v", err)
	}
	a, err = repo.GetByName(ctx, p.ID, "First Million")
	if err != nil {
		t.Fatalf("get achievement: %v", err)
	}
	if a.CurrentValue != 100 {
		t.Errorf("metric moved backwards: current=%d, want 100", a.CurrentValue)
	}
}

func TestConcurrentUpgradeSerialized(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	cards := service.NewCardService(pool, progress)

	p := newPlayer(t, pool, mining)

	if _, err := pool.Exec(ctx,
		`UPDATE user_stats SET coins = 10000 WHERE user_id = $1`, p.ID); err != nil {
		t.Fatalf("fund player: %v", err)
	}

	// Both requests race for the same card; the stats lock must serialize
	// the cooldown check so only one purchase lands.
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, _, err := cards.Upgrade(ctx, p.ID, "Basic Miner")
			errs <- err
		}()
	}

	var ok, blocked int
	for i := 0; i < 2; i++ {
		switch err := <-errs; err {
		case nil:
			ok++
		case service.ErrCooldownActive:
			blocked++
		default:
			t.Fatalf("upgrade: %v", err)
		}
	}
	if ok != 1 || blocked != 1 {
		t.Fatalf("got %d successes and %d cooldown rejections, want 1/1", ok, blocked)
	}

	card, err := repository.NewCardRepository(pool).GetByName(ctx, p.ID, "Basic Miner")
	if err != nil {
		t.Fatalf("get card: %v", err)
	}
	if card.Level != 1 {
		t.Errorf("card level = %d, want 1", card.Level)
	}
	state, err := mining.GetState(ctx, p.ID)
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Stats.Coins != 9_000 || state.Stats.MiningRate != 3 {
		t.Errorf("stats coins=%d rate=%d, want 9000/3", state.Stats.Coins, state.Stats.MiningRate)
	}
}

func TestShopPriceEscalation(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	progress := service.NewProgressService(pool)
	mining := service.NewMiningService(pool, progress)
	shop := service.NewShopService(pool, progress)

	p := newPlayer(t, pool, mining)

	if _, err := pool.Exec(ctx,
		`UPDATE user_stats SET stars = 100 WHERE user_id = $1`, p.ID); err != nil {
		t.Fatalf("fund player: %v", err)
	}

	st, item, err := shop.Purchase(ctx, p.ID, "Energy Pack")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if st.Stars != 80 {
		t.Errorf("stars after purchase = %d, want 80", st.Stars)
	}
	if item.CurrentPriceStars != 22 {
		t.Errorf("next price = %d, want 22", item.CurrentPriceStars)
	}
	if item.PurchaseCount != 1 {
		t.Errorf("purchase count = %d, want 1", item.PurchaseCount)
	}
}
