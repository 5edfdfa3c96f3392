package config

// x86_64 系统调用表 编号即下标
// 参数顺序对应 rdi rsi rdx r10 r8 r9
// 内核未分配的编号统一为 ni_syscall

var syscallTable = [...]SyscallSignature{
	0: {"read", K{INT, ADDR, INT}},
	1: {"write", K{INT, ADDR, INT}},
	2: {"open", K{STR, INT}},
	3: {"close", K{INT}},
	4: {"stat", K{STR, ADDR}},
	5: {"fstat", K{INT, ADDR}},
	6: {"lstat", K{STR, ADDR}},
	7: {"poll", K{ADDR, INT, INT}},
	8: {"lseek", K{INT, INT, INT}},
	9: {"mmap", K{ADDR, INT, INT, INT, INT, INT}},
	10: {"mprotect", K{ADDR, INT, INT}},
	11: {"munmap", K{ADDR, INT}},
	12: {"brk", K{ADDR}},
	13: {"rt_sigaction", K{INT, ADDR, ADDR, INT}},
	14: {"rt_sigprocmask", K{INT, ADDR, ADDR, INT}},
	15: {"rt_sigreturn", K{}},
	16: {"ioctl", K{INT, INT, ADDR}},
	17: {"pread64", K{INT, ADDR, INT, INT}},
	18: {"pwrite64", K{INT, ADDR, INT, INT}},
	19: {"readv", K{INT, ADDR, INT}},
	20: {"writev", K{INT, ADDR, INT}},
	21: {"access", K{STR, INT}},
	22: {"pipe", K{ADDR}},
	23: {"select", K{INT, ADDR, ADDR, ADDR, ADDR}},
	24: {"sched_yield", K{}},
	25: {"mremap", K{ADDR, INT, INT, INT, ADDR}},
	26: {"msync", K{ADDR, INT, INT}},
	27: {"mincore", K{ADDR, INT, ADDR}},
	28: {"madvise", K{ADDR, INT, INT}},
	29: {"shmget", K{INT, INT, INT}},
	30: {"shmat", K{INT, ADDR, INT}},
	31: {"shmctl", K{INT, INT, ADDR}},
	32: {"dup", K{INT}},
	33: {"dup2", K{INT, INT}},
	34: {"pause", K{}},
	35: {"nanosleep", K{ADDR, ADDR}},
	36: {"getitimer", K{INT, ADDR}},
	37: {"alarm", K{INT}},
	38: {"setitimer", K{INT, ADDR, ADDR}},
	39: {"getpid", K{}},
	40: {"sendfile", K{INT, INT, ADDR, INT}},
	41: {"socket", K{INT, INT, INT}},
	42: {"connect", K{INT, ADDR, INT}},
	43: {"accept", K{INT, ADDR, ADDR}},
	44: {"sendto", K{INT, ADDR, INT, INT, ADDR, INT}},
	45: {"recvfrom", K{INT, ADDR, INT, INT, ADDR, ADDR}},
	46: {"sendmsg", K{INT, ADDR, INT}},
	47: {"recvmsg", K{INT, ADDR, INT}},
	48: {"shutdown", K{INT, INT}},
	49: {"bind", K{INT, ADDR, INT}},
	50: {"listen", K{INT, INT}},
	51: {"getsockname", K{INT, ADDR, ADDR}},
	52: {"getpeername", K{INT, ADDR, ADDR}},
	53: {"socketpair", K{INT, INT, INT, ADDR}},
	54: {"setsockopt", K{INT, INT, INT, ADDR, INT}},
	55: {"getsockopt", K{INT, INT, INT, ADDR, ADDR}},
	56: {"clone", K{INT, ADDR, ADDR, ADDR, INT}},
	57: {"fork", K{}},
	58: {"vfork", K{}},
	59: {"execve", K{STR, ADDR, ADDR}},
	60: {"exit", K{INT}},
	61: {"wait4", K{INT, ADDR, INT, ADDR}},
	62: {"kill", K{INT, INT}},
	63: {"uname", K{ADDR}},
	64: {"semget", K{INT, INT, INT}},
	65: {"semop", K{INT, ADDR, INT}},
	66: {"semctl", K{INT, INT, INT, INT}},
	67: {"shmdt", K{ADDR}},
	68: {"msgget", K{INT, INT}},
	69: {"msgsnd", K{INT, ADDR, INT, INT}},
	70: {"msgrcv", K{INT, ADDR, INT, INT, INT}},
	71: {"msgctl", K{INT, INT, ADDR}},
	72: {"fcntl", K{INT, INT, INT}},
	73: {"flock", K{INT, INT}},
	74: {"fsync", K{INT}},
	75: {"fdatasync", K{INT}},
	76: {"truncate", K{STR, INT}},
	77: {"ftruncate", K{INT, INT}},
	78: {"getdents", K{INT, ADDR, INT}},
	79: {"getcwd", K{ADDR, INT}},
	80: {"chdir", K{STR}},
	81: {"fchdir", K{INT}},
	82: {"rename", K{STR, STR}},
	83: {"mkdir", K{STR, INT}},
	84: {"rmdir", K{STR}},
	85: {"creat", K{STR, INT}},
	86: {"link", K{STR, STR}},
	87: {"unlink", K{STR}},
	88: {"symlink", K{STR, STR}},
	89: {"readlink", K{STR, ADDR, INT}},
	90: {"chmod", K{STR, INT}},
	91: {"fchmod", K{INT, INT}},
	92: {"chown", K{STR, INT, INT}},
	93: {"fchown", K{INT, INT, INT}},
	94: {"lchown", K{STR, INT, INT}},
	95: {"umask", K{INT}},
	96: {"gettimeofday", K{ADDR, ADDR}},
	97: {"getrlimit", K{INT, ADDR}},
	98: {"getrusage", K{INT, ADDR}},
	99: {"sysinfo", K{ADDR}},
	100: {"times", K{ADDR}},
	101: {"ptrace", K{INT, INT, ADDR, ADDR}},
	102: {"getuid", K{}},
	103: {"syslog", K{INT, ADDR, INT}},
	104: {"getgid", K{}},
	105: {"setuid", K{INT}},
	106: {"setgid", K{INT}},
	107: {"geteuid", K{}},
	108: {"getegid", K{}},
	109: {"setpgid", K{INT, INT}},
	110: {"getppid", K{}},
	111: {"getpgrp", K{}},
	112: {"setsid", K{}},
	113: {"setreuid", K{INT, INT}},
	114: {"setregid", K{INT, INT}},
	115: {"getgroups", K{INT, ADDR}},
	116: {"setgroups", K{INT, ADDR}},
	117: {"setresuid", K{INT, INT, INT}},
	118: {"getresuid", K{ADDR, ADDR, ADDR}},
	119: {"setresgid", K{INT, INT, INT}},
	120: {"getresgid", K{ADDR, ADDR, ADDR}},
	121: {"getpgid", K{INT}},
	122: {"setfsuid", K{INT}},
	123: {"setfsgid", K{INT}},
	124: {"getsid", K{INT}},
	125: {"capget", K{ADDR, ADDR}},
	126: {"capset", K{ADDR, ADDR}},
	127: {"rt_sigpending", K{ADDR, INT}},
	128: {"rt_sigtimedwait", K{ADDR, ADDR, ADDR, INT}},
	129: {"rt_sigqueueinfo", K{INT, INT, ADDR}},
	130: {"rt_sigsuspend", K{ADDR, INT}},
	131: {"sigaltstack", K{ADDR, ADDR}},
	132: {"utime", K{STR, ADDR}},
	133: {"mknod", K{STR, INT, INT}},
	134: {"uselib", K{STR}},
	135: {"personality", K{INT}},
	136: {"ustat", K{INT, ADDR}},
	137: {"statfs", K{STR, ADDR}},
	138: {"fstatfs", K{INT, ADDR}},
	139: {"sysfs", K{INT, INT, INT}},
	140: {"getpriority", K{INT, INT}},
	141: {"setpriority", K{INT, INT, INT}},
	142: {"sched_setparam", K{INT, ADDR}},
	143: {"sched_getparam", K{INT, ADDR}},
	144: {"sched_setscheduler", K{INT, INT, ADDR}},
	145: {"sched_getscheduler", K{INT}},
	146: {"sched_get_priority_max", K{INT}},
	147: {"sched_get_priority_min", K{INT}},
	148: {"sched_rr_get_interval", K{INT, ADDR}},
	149: {"mlock", K{ADDR, INT}},
	150: {"munlock", K{ADDR, INT}},
	151: {"mlockall", K{INT}},
	152: {"munlockall", K{}},
	153: {"vhangup", K{}},
	154: {"modify_ldt", K{INT, ADDR, INT}},
	155: {"pivot_root", K{STR, STR}},
	156: {"_sysctl", K{ADDR}},
	157: {"prctl", K{INT, INT, INT, INT, INT}},
	158: {"arch_prctl", K{INT, ADDR}},
	159: {"adjtimex", K{ADDR}},
	160: {"setrlimit", K{INT, ADDR}},
	161: {"chroot", K{STR}},
	162: {"sync", K{}},
	163: {"acct", K{STR}},
	164: {"settimeofday", K{ADDR, ADDR}},
	165: {"mount", K{STR, STR, STR, INT, ADDR}},
	166: {"umount2", K{STR, INT}},
	167: {"swapon", K{STR, INT}},
	168: {"swapoff", K{STR}},
	169: {"reboot", K{INT, INT, INT, ADDR}},
	170: {"sethostname", K{STR, INT}},
	171: {"setdomainname", K{STR, INT}},
	172: {"iopl", K{INT}},
	173: {"ioperm", K{INT, INT, INT}},
	174: {"create_module", K{STR, INT}},
	175: {"init_module", K{ADDR, INT, STR}},
	176: {"delete_module", K{STR, INT}},
	177: {"get_kernel_syms", K{ADDR}},
	178: {"query_module", K{STR, INT, ADDR, INT, ADDR}},
	179: {"quotactl", K{INT, STR, INT, ADDR}},
	180: {"nfsservctl", K{INT, ADDR, ADDR}},
	181: {"getpmsg", K{}},
	182: {"putpmsg", K{}},
	183: {"afs_syscall", K{}},
	184: {"tuxcall", K{}},
	185: {"security", K{}},
	186: {"gettid", K{}},
	187: {"readahead", K{INT, INT, INT}},
	188: {"setxattr", K{STR, STR, ADDR, INT, INT}},
	189: {"lsetxattr", K{STR, STR, ADDR, INT, INT}},
	190: {"fsetxattr", K{INT, STR, ADDR, INT, INT}},
	191: {"getxattr", K{STR, STR, ADDR, INT}},
	192: {"lgetxattr", K{STR, STR, ADDR, INT}},
	193: {"fgetxattr", K{INT, STR, ADDR, INT}},
	194: {"listxattr", K{STR, ADDR, INT}},
	195: {"llistxattr", K{STR, ADDR, INT}},
	196: {"flistxattr", K{INT, ADDR, INT}},
	197: {"removexattr", K{STR, STR}},
	198: {"lremovexattr", K{STR, STR}},
	199: {"fremovexattr", K{INT, STR}},
	200: {"tkill", K{INT, INT}},
	201: {"time", K{ADDR}},
	202: {"futex", K{ADDR, INT, INT, ADDR, ADDR, INT}},
	203: {"sched_setaffinity", K{INT, INT, ADDR}},
	204: {"sched_getaffinity", K{INT, INT, ADDR}},
	205: {"set_thread_area", K{ADDR}},
	206: {"io_setup", K{INT, ADDR}},
	207: {"io_destroy", K{INT}},
	208: {"io_getevents", K{INT, INT, INT, ADDR, ADDR}},
	209: {"io_submit", K{INT, INT, ADDR}},
	210: {"io_cancel", K{INT, ADDR, ADDR}},
	211: {"get_thread_area", K{ADDR}},
	212: {"lookup_dcookie", K{INT, ADDR, INT}},
	213: {"epoll_create", K{INT}},
	214: {"epoll_ctl_old", K{}},
	215: {"epoll_wait_old", K{}},
	216: {"remap_file_pages", K{ADDR, INT, INT, INT, INT}},
	217: {"getdents64", K{INT, ADDR, INT}},
	218: {"set_tid_address", K{ADDR}},
	219: {"restart_syscall", K{}},
	220: {"semtimedop", K{INT, ADDR, INT, ADDR}},
	221: {"fadvise64", K{INT, INT, INT, INT}},
	222: {"timer_create", K{INT, ADDR, ADDR}},
	223: {"timer_settime", K{INT, INT, ADDR, ADDR}},
	224: {"timer_gettime", K{INT, ADDR}},
	225: {"timer_getoverrun", K{INT}},
	226: {"timer_delete", K{INT}},
	227: {"clock_settime", K{INT, ADDR}},
	228: {"clock_gettime", K{INT, ADDR}},
	229: {"clock_getres", K{INT, ADDR}},
	230: {"clock_nanosleep", K{INT, INT, ADDR, ADDR}},
	231: {"exit_group", K{INT}},
	232: {"epoll_wait", K{INT, ADDR, INT, INT}},
	233: {"epoll_ctl", K{INT, INT, INT, ADDR}},
	234: {"tgkill", K{INT, INT, INT}},
	235: {"utimes", K{STR, ADDR}},
	236: {"vserver", K{}},
	237: {"mbind", K{ADDR, INT, INT, ADDR, INT, INT}},
	238: {"set_mempolicy", K{INT, ADDR, INT}},
	239: {"get_mempolicy", K{ADDR, ADDR, INT, ADDR, INT}},
	240: {"mq_open", K{STR, INT, INT, ADDR}},
	241: {"mq_unlink", K{STR}},
	242: {"mq_timedsend", K{INT, ADDR, INT, INT, ADDR}},
	243: {"mq_timedreceive", K{INT, ADDR, INT, ADDR, ADDR}},
	244: {"mq_notify", K{INT, ADDR}},
	245: {"mq_getsetattr", K{INT, ADDR, ADDR}},
	246: {"kexec_load", K{INT, INT, ADDR, INT}},
	247: {"waitid", K{INT, INT, ADDR, INT, ADDR}},
	248: {"add_key", K{STR, STR, ADDR, INT, INT}},
	249: {"request_key", K{STR, STR, STR, INT}},
	250: {"keyctl", K{INT, INT, INT, INT, INT}},
	251: {"ioprio_set", K{INT, INT, INT}},
	252: {"ioprio_get", K{INT, INT}},
	253: {"inotify_init", K{}},
	254: {"inotify_add_watch", K{INT, STR, INT}},
	255: {"inotify_rm_watch", K{INT, INT}},
	256: {"migrate_pages", K{INT, INT, ADDR, ADDR}},
	257: {"openat", K{INT, STR, INT, INT}},
	258: {"mkdirat", K{INT, STR, INT}},
	259: {"mknodat", K{INT, STR, INT, INT}},
	260: {"fchownat", K{INT, STR, INT, INT, INT}},
	261: {"futimesat", K{INT, STR, ADDR}},
	262: {"newfstatat", K{INT, STR, ADDR, INT}},
	263: {"unlinkat", K{INT, STR, INT}},
	264: {"renameat", K{INT, STR, INT, STR}},
	265: {"linkat", K{INT, STR, INT, STR, INT}},
	266: {"symlinkat", K{STR, INT, STR}},
	267: {"readlinkat", K{INT, STR, ADDR, INT}},
	268: {"fchmodat", K{INT, STR, INT}},
	269: {"faccessat", K{INT, STR, INT}},
	270: {"pselect6", K{INT, ADDR, ADDR, ADDR, ADDR, ADDR}},
	271: {"ppoll", K{ADDR, INT, ADDR, ADDR, INT}},
	272: {"unshare", K{INT}},
	273: {"set_robust_list", K{ADDR, INT}},
	274: {"get_robust_list", K{INT, ADDR, ADDR}},
	275: {"splice", K{INT, ADDR, INT, ADDR, INT, INT}},
	276: {"tee", K{INT, INT, INT, INT}},
	277: {"sync_file_range", K{INT, INT, INT, INT}},
	278: {"vmsplice", K{INT, ADDR, INT, INT}},
	279: {"move_pages", K{INT, INT, ADDR, ADDR, ADDR, INT}},
	280: {"utimensat", K{INT, STR, ADDR, INT}},
	281: {"epoll_pwait", K{INT, ADDR, INT, INT, ADDR, INT}},
	282: {"signalfd", K{INT, ADDR, INT}},
	283: {"timerfd_create", K{INT, INT}},
	284: {"eventfd", K{INT}},
	285: {"fallocate", K{INT, INT, INT, INT}},
	286: {"timerfd_settime", K{INT, INT, ADDR, ADDR}},
	287: {"timerfd_gettime", K{INT, ADDR}},
	288: {"accept4", K{INT, ADDR, ADDR, INT}},
	289: {"signalfd4", K{INT, ADDR, INT, INT}},
	290: {"eventfd2", K{INT, INT}},
	291: {"epoll_create1", K{INT}},
	292: {"dup3", K{INT, INT, INT}},
	293: {"pipe2", K{ADDR, INT}},
	294: {"inotify_init1", K{INT}},
	295: {"preadv", K{INT, ADDR, INT, INT, INT}},
	296: {"pwritev", K{INT, ADDR, INT, INT, INT}},
	297: {"rt_tgsigqueueinfo", K{INT, INT, INT, ADDR}},
	298: {"perf_event_open", K{ADDR, INT, INT, INT, INT}},
	299: {"recvmmsg", K{INT, ADDR, INT, INT, ADDR}},
	300: {"fanotify_init", K{INT, INT}},
	301: {"fanotify_mark", K{INT, INT, INT, INT, STR}},
	302: {"prlimit64", K{INT, INT, ADDR, ADDR}},
	303: {"name_to_handle_at", K{INT, STR, ADDR, ADDR, INT}},
	304: {"open_by_handle_at", K{INT, ADDR, INT}},
	305: {"clock_adjtime", K{INT, ADDR}},
	306: {"syncfs", K{INT}},
	307: {"sendmmsg", K{INT, ADDR, INT, INT}},
	308: {"setns", K{INT, INT}},
	309: {"getcpu", K{ADDR, ADDR, ADDR}},
	310: {"process_vm_readv", K{INT, ADDR, INT, ADDR, INT, INT}},
	311: {"process_vm_writev", K{INT, ADDR, INT, ADDR, INT, INT}},
	312: {"kcmp", K{INT, INT, INT, INT, INT}},
	313: {"finit_module", K{INT, STR, INT}},
	314: {"sched_setattr", K{INT, ADDR, INT}},
	315: {"sched_getattr", K{INT, ADDR, INT, INT}},
	316: {"renameat2", K{INT, STR, INT, STR, INT}},
	317: {"seccomp", K{INT, INT, ADDR}},
	318: {"getrandom", K{ADDR, INT, INT}},
	319: {"memfd_create", K{STR, INT}},
	320: {"kexec_file_load", K{INT, INT, INT, STR, INT}},
	321: {"bpf", K{INT, ADDR, INT}},
	322: {"execveat", K{INT, STR, ADDR, ADDR, INT}},
	323: {"userfaultfd", K{INT}},
	324: {"membarrier", K{INT, INT}},
	325: {"mlock2", K{ADDR, INT, INT}},
	326: {"copy_file_range", K{INT, ADDR, INT, ADDR, INT, INT}},
	327: {"preadv2", K{INT, ADDR, INT, INT, INT, INT}},
	328: {"pwritev2", K{INT, ADDR, INT, INT, INT, INT}},
	329: {"pkey_mprotect", K{ADDR, INT, INT, INT}},
	330: {"pkey_alloc", K{INT, INT}},
	331: {"pkey_free", K{INT}},
	332: {"statx", K{INT, STR, INT, INT, ADDR}},
	333: {"io_pgetevents", K{INT, INT, INT, ADDR, ADDR, ADDR}},
	334: {"rseq", K{ADDR, INT, INT, INT}},
	335: {"ni_syscall", K{}},
	336: {"ni_syscall", K{}},
	337: {"ni_syscall", K{}},
	338: {"ni_syscall", K{}},
	339: {"ni_syscall", K{}},
	340: {"ni_syscall", K{}},
	341: {"ni_syscall", K{}},
	342: {"ni_syscall", K{}},
	343: {"ni_syscall", K{}},
	344: {"ni_syscall", K{}},
	345: {"ni_syscall", K{}},
	346: {"ni_syscall", K{}},
	347: {"ni_syscall", K{}},
	348: {"ni_syscall", K{}},
	349: {"ni_syscall", K{}},
	350: {"ni_syscall", K{}},
	351: {"ni_syscall", K{}},
	352: {"ni_syscall", K{}},
	353: {"ni_syscall", K{}},
	354: {"ni_syscall", K{}},
	355: {"ni_syscall", K{}},
	356: {"ni_syscall", K{}},
	357: {"ni_syscall", K{}},
	358: {"ni_syscall", K{}},
	359: {"ni_syscall", K{}},
	360: {"ni_syscall", K{}},
	361: {"ni_syscall", K{}},
	362: {"ni_syscall", K{}},
	363: {"ni_syscall", K{}},
	364: {"ni_syscall", K{}},
	365: {"ni_syscall", K{}},
	366: {"ni_syscall", K{}},
	367: {"ni_syscall", K{}},
	368: {"ni_syscall", K{}},
	369: {"ni_syscall", K{}},
	370: {"ni_syscall", K{}},
	371: {"ni_syscall", K{}},
	372: {"ni_syscall", K{}},
	373: {"ni_syscall", K{}},
	374: {"ni_syscall", K{}},
	375: {"ni_syscall", K{}},
	376: {"ni_syscall", K{}},
	377: {"ni_syscall", K{}},
	378: {"ni_syscall", K{}},
	379: {"ni_syscall", K{}},
	380: {"ni_syscall", K{}},
	381: {"ni_syscall", K{}},
	382: {"ni_syscall", K{}},
	383: {"ni_syscall", K{}},
	384: {"ni_syscall", K{}},
	385: {"ni_syscall", K{}},
	386: {"ni_syscall", K{}},
	387: {"ni_syscall", K{}},
	388: {"ni_syscall", K{}},
	389: {"ni_syscall", K{}},
	390: {"ni_syscall", K{}},
	391: {"ni_syscall", K{}},
	392: {"ni_syscall", K{}},
	393: {"ni_syscall", K{}},
	394: {"ni_syscall", K{}},
	395: {"ni_syscall", K{}},
	396: {"ni_syscall", K{}},
	397: {"ni_syscall", K{}},
	398: {"ni_syscall", K{}},
	399: {"ni_syscall", K{}},
	400: {"ni_syscall", K{}},
	401: {"ni_syscall", K{}},
	402: {"ni_syscall", K{}},
	403: {"ni_syscall", K{}},
	404: {"ni_syscall", K{}},
	405: {"ni_syscall", K{}},
	406: {"ni_syscall", K{}},
	407: {"ni_syscall", K{}},
	408: {"ni_syscall", K{}},
	409: {"ni_syscall", K{}},
	410: {"ni_syscall", K{}},
	411: {"ni_syscall", K{}},
	412: {"ni_syscall", K{}},
	413: {"ni_syscall", K{}},
	414: {"ni_syscall", K{}},
	415: {"ni_syscall", K{}},
	416: {"ni_syscall", K{}},
	417: {"ni_syscall", K{}},
	418: {"ni_syscall", K{}},
	419: {"ni_syscall", K{}},
	420: {"ni_syscall", K{}},
	421: {"ni_syscall", K{}},
	422: {"ni_syscall", K{}},
	423: {"ni_syscall", K{}},
	424: {"pidfd_send_signal", K{INT, INT, ADDR, INT}},
	425: {"io_uring_setup", K{INT, ADDR}},
	426: {"io_uring_enter", K{INT, INT, INT, INT, ADDR, INT}},
	427: {"io_uring_register", K{INT, INT, ADDR, INT}},
	428: {"open_tree", K{INT, STR, INT}},
	429: {"move_mount", K{INT, STR, INT, STR, INT}},
	430: {"fsopen", K{STR, INT}},
	431: {"fsconfig", K{INT, INT, STR, ADDR, INT}},
	432: {"fsmount", K{INT, INT, INT}},
	433: {"fspick", K{INT, STR, INT}},
	434: {"pidfd_open", K{INT, INT}},
	435: {"clone3", K{ADDR, INT}},
	436: {"close_range", K{INT, INT, INT}},
	437: {"openat2", K{INT, STR, ADDR, INT}},
	438: {"pidfd_getfd", K{INT, INT, INT}},
	439: {"faccessat2", K{INT, STR, INT, INT}},
	440: {"process_madvise", K{INT, ADDR, INT, INT, INT}},
	441: {"epoll_pwait2", K{INT, ADDR, INT, ADDR, ADDR, INT}},
	442: {"mount_setattr", K{INT, STR, INT, ADDR, INT}},
	443: {"quotactl_fd", K{INT, INT, INT, ADDR}},
	444: {"landlock_create_ruleset", K{ADDR, INT, INT}},
	445: {"landlock_add_rule", K{INT, INT, ADDR, INT}},
	446: {"landlock_restrict_self", K{INT, INT}},
	447: {"memfd_secret", K{INT}},
	448: {"process_mrelease", K{INT, INT}},
	449: {"futex_waitv", K{ADDR, INT, INT, ADDR, INT}},
	450: {"set_mempolicy_home_node", K{INT, INT, INT, INT}},
	451: {"cachestat", K{INT, ADDR, ADDR, INT}},
	452: {"fchmodat2", K{INT, STR, INT, INT}},
	453: {"map_shadow_stack", K{ADDR, INT, INT}},
	454: {"futex_wake", K{ADDR, INT, INT, INT}},
	455: {"futex_wait", K{ADDR, INT, INT, INT, ADDR, INT}},
	456: {"futex_requeue", K{ADDR, INT, INT, INT}},
	457: {"statmount", K{ADDR, ADDR, INT, INT}},
	458: {"listmount", K{ADDR, ADDR, INT, INT}},
	459: {"lsm_get_self_attr", K{INT, ADDR, ADDR, INT}},
	460: {"lsm_set_self_attr", K{INT, ADDR, INT, INT}},
	461: {"lsm_list_modules", K{ADDR, ADDR, INT}},
	462: {"mseal", K{ADDR, INT, INT}},
}
