// Package tmpl 提供尖括号占位符替换功能。
//
// 模板中的占位符形如 <key>，由 [Render] 按绑定顺序逐个替换为值的字符串形式。
//
// # 核心设计原则
//
//  1. 纯字符串替换，不解析模板语法，不会因模板内容出错
//  2. 未绑定的占位符原样保留，不视为错误
//  3. 绑定有序 ([Bindings])，替换结果与遍历 map 的顺序无关
//  4. 调用方保证各 key 的 <key> 形式互不重叠
//
// 详见 [Render] 文档。
package tmpl
