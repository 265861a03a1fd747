package kvconf

import "log/slog"

// options 加载选项。
type options struct {
	strict bool           // 遇到缺少 "=" 的行时中止加载
	policy ConflictPolicy // 路径经过叶子值时的处理策略
	logger *slog.Logger
}

// Option 加载选项函数。
type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{policy: ConflictReject}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// WithStrict 将缺少 "=" 的行视为错误，加载以 [MalformedLineError] 中止。
//
// 默认行为是跳过该行并输出一条 Warn 日志。
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithConflictPolicy 设置路径冲突的处理策略，默认 [ConflictReject]。
func WithConflictPolicy(policy ConflictPolicy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithLogger 指定日志输出，默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
