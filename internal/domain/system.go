package domain

// DiskInfo describes one mounted disk. Sizes are in bytes.
type DiskInfo struct {
	Name           string `json:"name" yaml:"name"`
	TotalSpace     uint64 `json:"total_space" yaml:"total_space"`
	AvailableSpace uint64 `json:"available_space" yaml:"available_space"`
}

// SystemSnapshot is a point-in-time view of host resources. Sizes are in bytes,
// usages in percent. GPU fields are nil when no supported GPU is found.
type SystemSnapshot struct {
	TotalMemory uint64     `json:"total_memory" yaml:"total_memory"`
	UsedMemory  uint64     `json:"used_memory" yaml:"used_memory"`
	TotalSwap   uint64     `json:"total_swap" yaml:"total_swap"`
	UsedSwap    uint64     `json:"used_swap" yaml:"used_swap"`
	CPUUsage    float64    `json:"cpu_usage" yaml:"cpu_usage"`
	CPUName     string     `json:"cpu_name" yaml:"cpu_name"`
	Disks       []DiskInfo `json:"disk_space" yaml:"disk_space"`
	GPUName     *string    `json:"gpu_name" yaml:"gpu_name"`
	GPUUsage    *float64   `json:"gpu_usage" yaml:"gpu_usage"`
	SystemName  string     `json:"system_name" yaml:"system_name"`
}
