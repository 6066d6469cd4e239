package constants

const HELP_DEVICE_ARGS = `Args list is a list of whole block devices (e.g. "/dev/sda" or
"/dev/disk/by-id/ata-XXX"). Partitions (names ending with a digit) are rejected,
except for nvme* and mmcblk* devices. Devices are grouped in the given order`

const HELP_ASHIFT = `Pool sector size exponent (9 - 16). 0: let zfs decide.
9: 1<<9 == 512
10: 1<<10 == 1024
11: 1<<11 == 2048
12: 1<<12 == 4096
13: 1<<13 == 8192`

const HELP_RAID_GROUP_SIZE = `Devices per redundancy group.
1 device: "--raid disk". 2 devices: "--raid mirror".
More devices: 2 = striped mirror pairs (raid10), 8 or 16 = one raidz3 group of all devices,
any other size with "--raid mirror" = one mirror of all devices. 4 is not supported`

const HELP_SIMULATE = "Print the commands instead of executing them"
