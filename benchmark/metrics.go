// Package benchmark - Functionality for timing linear search across array sizes.
package benchmark

import (
	"runtime"
	"time"
)

// SweepResult holds the measurements of one sweep over every size for a single distribution.
type SweepResult struct {
	Distribution Distribution  `json:"distribution"`
	Sizes        []int         `json:"sizes"`
	Totals       []int64       `json:"totals"`
	Matches      int           `json:"matches"`
	Duration     time.Duration `json:"duration"`
	MemoryStats  MemoryMetrics `json:"memory_stats"`
}

// MemoryMetrics captures memory usage statistics
type MemoryMetrics struct {
	AllocBytes      uint64 `json:"alloc_bytes"`
	TotalAllocBytes uint64 `json:"total_alloc_bytes"`
	SysBytes        uint64 `json:"sys_bytes"`
	NumGC           uint32 `json:"num_gc"`
	HeapAllocBytes  uint64 `json:"heap_alloc_bytes"`
	HeapSysBytes    uint64 `json:"heap_sys_bytes"`
}

// NewMemoryMetrics computes the memory delta between two runtime snapshots.
func NewMemoryMetrics(start, end runtime.MemStats) MemoryMetrics {
	return MemoryMetrics{
		AllocBytes:      end.Alloc,
		TotalAllocBytes: end.TotalAlloc - start.TotalAlloc,
		SysBytes:        end.Sys,
		NumGC:           end.NumGC - start.NumGC,
		HeapAllocBytes:  end.HeapAlloc,
		HeapSysBytes:    end.HeapSys,
	}
}
