package nft

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/x-xyz/nftdapp/base/ctx"
	"github.com/x-xyz/nftdapp/domain"
	"github.com/x-xyz/nftdapp/domain/keys"
)

// SnapshotId identifies what a snapshot was aggregated for. Wallet is empty
// for scans that do not depend on a wallet.
type SnapshotId struct {
	ChainId domain.ChainId `json:"chainId"`
	Wallet  domain.Address `json:"wallet,omitempty"`
	Mode    ScanMode       `json:"mode"`
}

func (id SnapshotId) Key() string {
	return keys.RedisKey(keys.PfxSnapshot, strconv.Itoa(int(id.ChainId)), id.Wallet.ToLowerStr(), string(id.Mode))
}

// Snapshot is the result of one complete aggregation pass. It is never
// modified after construction; a newer pass supersedes it wholesale.
type Snapshot struct {
	id          SnapshotId
	totalSupply uint64
	records     []TokenRecord
	skipped     int
	scanId      string
	createdAt   time.Time
}

// NewSnapshot copies records and orders them by ascending token id.
func NewSnapshot(id SnapshotId, totalSupply uint64, records []TokenRecord, skipped int, scanId string, createdAt time.Time) *Snapshot {
	rs := make([]TokenRecord, len(records))
	copy(rs, records)
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].TokenId < rs[j].TokenId
	})
	return &Snapshot{
		id:          id,
		totalSupply: totalSupply,
		records:     rs,
		skipped:     skipped,
		scanId:      scanId,
		createdAt:   createdAt,
	}
}

func (s *Snapshot) Id() SnapshotId {
	return s.id
}

func (s *Snapshot) TotalSupply() uint64 {
	return s.totalSupply
}

// Records returns a copy, callers may not alter the snapshot through it
func (s *Snapshot) Records() []TokenRecord {
	rs := make([]TokenRecord, len(s.records))
	copy(rs, s.records)
	return rs
}

func (s *Snapshot) Len() int {
	return len(s.records)
}

// Skipped is the number of token ids dropped by per-token read failures
func (s *Snapshot) Skipped() int {
	return s.skipped
}

func (s *Snapshot) ScanId() string {
	return s.scanId
}

func (s *Snapshot) CreatedAt() time.Time {
	return s.createdAt
}

type snapshotJson struct {
	Id          SnapshotId    `json:"id"`
	TotalSupply uint64        `json:"totalSupply"`
	Records     []TokenRecord `json:"records"`
	Skipped     int           `json:"skipped"`
	ScanId      string        `json:"scanId"`
	CreatedAt   time.Time     `json:"createdAt"`
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJson{
		Id:          s.id,
		TotalSupply: s.totalSupply,
		Records:     s.records,
		Skipped:     s.skipped,
		ScanId:      s.scanId,
		CreatedAt:   s.createdAt,
	})
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var v snapshotJson
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = *NewSnapshot(v.Id, v.TotalSupply, v.Records, v.Skipped, v.ScanId, v.CreatedAt)
	return nil
}

// SnapshotRepo keeps the latest committed snapshot per SnapshotId
type SnapshotRepo interface {
	Get(c ctx.Ctx, id SnapshotId) (*Snapshot, error)
	Put(c ctx.Ctx, s *Snapshot) error
	Del(c ctx.Ctx, id SnapshotId) error
}
