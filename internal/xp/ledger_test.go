package xp

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"locus-bot/internal/kafka/notifier"
	"locus-bot/internal/repository"
	"locus-bot/internal/repository/model"
)

const (
	testGuildId  = "100000000000000001"
	testUserId   = "200000000000000001"
	testUserName = "alice#0001"
)

var testNow = time.Unix(1700000000, 0)

type ledgerMocks struct {
	repo  *repository.MockXpRepository
	notif *notifier.MockNotifier
}

func newTestLedger(t *testing.T, award int) (*Ledger, ledgerMocks) {
	ctrl := gomock.NewController(t)
	m := ledgerMocks{
		repo:  repository.NewMockXpRepository(ctrl),
		notif: notifier.NewMockNotifier(ctrl),
	}

	l := NewLedger(zap.NewNop().Sugar(), m.repo, m.notif, DefaultPolicy())
	l.intN = func(n int) int {
		return award - l.policy.MinAward
	}
	return l, m
}

func TestLedger_OnMessage(t *testing.T) {
	tests := map[string]struct {
		award int

		existing *model.XpRecord
		getErr   error
		mocks    func(m ledgerMocks)

		want    *model.XpRecord
		wantErr bool
	}{
		"first message creates record": {
			award:  20,
			getErr: mongo.ErrNoDocuments,
			mocks: func(m ledgerMocks) {
				m.repo.EXPECT().CreateXpRecord(gomock.Any(), gomock.Any()).Return(nil)
				m.notif.EXPECT().XpUpdate(gomock.Any(), gomock.Any(), 1, false).Return(nil)
			},
			want: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 20, LastXp: testNow.Unix()},
		},
		"within cooldown is unchanged": {
			award:    20,
			existing: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 50, LastXp: testNow.Unix() - 60},
			mocks:    func(m ledgerMocks) {},
			want:     &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 50, LastXp: testNow.Unix() - 60},
		},
		"exactly at cooldown is unchanged": {
			award:    20,
			existing: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 50, LastXp: testNow.Unix() - 120},
			mocks:    func(m ledgerMocks) {},
			want:     &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 50, LastXp: testNow.Unix() - 120},
		},
		"after cooldown awards": {
			award:    24,
			existing: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: "alice#0000", XpAmount: 50, LastXp: testNow.Unix() - 121},
			mocks: func(m ledgerMocks) {
				m.repo.EXPECT().UpdateXpRecord(gomock.Any(), gomock.Any()).Return(nil)
				m.notif.EXPECT().XpUpdate(gomock.Any(), gomock.Any(), 1, false).Return(nil)
			},
			want: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 74, LastXp: testNow.Unix()},
		},
		"award crossing a level reports level up": {
			award:    15,
			existing: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 90, LastXp: testNow.Unix() - 500},
			mocks: func(m ledgerMocks) {
				m.repo.EXPECT().UpdateXpRecord(gomock.Any(), gomock.Any()).Return(nil)
				m.notif.EXPECT().XpUpdate(gomock.Any(), gomock.Any(), 2, true).Return(nil)
			},
			want: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 105, LastXp: testNow.Unix()},
		},
		"notifier failure is not returned": {
			award:  15,
			getErr: mongo.ErrNoDocuments,
			mocks: func(m ledgerMocks) {
				m.repo.EXPECT().CreateXpRecord(gomock.Any(), gomock.Any()).Return(nil)
				m.notif.EXPECT().XpUpdate(gomock.Any(), gomock.Any(), 1, false).Return(errors.New("kafka down"))
			},
			want: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 15, LastXp: testNow.Unix()},
		},
		"get failure": {
			award:   15,
			getErr:  errors.New("database unavailable"),
			mocks:   func(m ledgerMocks) {},
			wantErr: true,
		},
		"update failure": {
			award:    15,
			existing: &model.XpRecord{GuildId: testGuildId, UserId: testUserId, UserName: testUserName, XpAmount: 50, LastXp: 0},
			mocks: func(m ledgerMocks) {
				m.repo.EXPECT().UpdateXpRecord(gomock.Any(), gomock.Any()).Return(errors.New("database unavailable"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l, m := newTestLedger(t, tt.award)
			m.repo.EXPECT().GetXpRecord(gomock.Any(), testGuildId, testUserId).Return(tt.existing, tt.getErr)
			tt.mocks(m)

			got, err := l.OnMessage(context.Background(), testGuildId, testUserId, testUserName, testNow)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_AwardRange(t *testing.T) {
	l := NewLedger(zap.NewNop().Sugar(), nil, nil, Policy{Cooldown: time.Minute, MinAward: 15, MaxAward: 25})
	for i := 0; i < 1000; i++ {
		award := l.award()
		assert.GreaterOrEqual(t, award, int64(15))
		assert.Less(t, award, int64(25))
	}

	l.policy = Policy{MinAward: 10, MaxAward: 10}
	assert.Equal(t, int64(10), l.award())
}

// memoryXpRepository reads and writes with a delay to widen the window for lost updates.
type memoryXpRepository struct {
	mu      sync.Mutex
	records map[string]model.XpRecord
}

func (r *memoryXpRepository) GetXpRecord(_ context.Context, guildId string, userId string) (*model.XpRecord, error) {
	time.Sleep(time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[guildId+userId]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &record, nil
}

func (r *memoryXpRepository) CreateXpRecord(_ context.Context, record *model.XpRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.GuildId+record.UserId]; ok {
		return errors.New("duplicate key")
	}
	r.records[record.GuildId+record.UserId] = *record
	return nil
}

func (r *memoryXpRepository) UpdateXpRecord(_ context.Context, record *model.XpRecord) error {
	time.Sleep(time.Millisecond)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.GuildId+record.UserId] = *record
	return nil
}

func TestLedger_OnMessage_SerializedPerUser(t *testing.T) {
	repo := &memoryXpRepository{records: make(map[string]model.XpRecord)}
	l := NewLedger(zap.NewNop().Sugar(), repo, notifier.NewNoopNotifier(), Policy{Cooldown: 0, MinAward: 10, MaxAward: 10})

	var failures atomic.Int32
	wg := sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Every call is one second apart so each clears the zero cooldown.
			if _, err := l.OnMessage(context.Background(), testGuildId, testUserId, testUserName, testNow.Add(time.Duration(i)*time.Second)); err != nil {
				failures.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, failures.Load())
	assert.Zero(t, l.locks.size())
}

func TestKeyedMutex(t *testing.T) {
	k := newKeyedMutex()

	var inside atomic.Int32
	var maxInside atomic.Int32
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("a")
			n := inside.Add(1)
			if n > maxInside.Load() {
				maxInside.Store(n)
			}
			time.Sleep(time.Millisecond)
			inside.Add(-1)
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside.Load())
	assert.Zero(t, k.size())

	// Different keys do not block each other.
	unlockA := k.Lock("a")
	unlockB := k.Lock("b")
	assert.Equal(t, 2, k.size())
	unlockA()
	unlockB()
	assert.Zero(t, k.size())
}
