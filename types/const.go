package types

// Precision 格式化输出小数位数
var Precision = 4
