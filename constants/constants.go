package constants

// Kernel module loaded before any pool is created.
const ZFS_KERNEL_MODULE = "zfs"
