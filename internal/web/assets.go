package web

// cssContent is the stylesheet shared by every page.
const cssContent = `:root {
  --bg: #ffffff;
  --fg: #1a1f2e;
  --muted: #5f6b7a;
  --muted-bg: #f3f5f8;
  --border: #e2e6ec;
  --primary: #3b5bdb;
  --primary-fg: #ffffff;
  --accent: #7048e8;
  --success: #2f9e44;
  --warning: #f59f00;
  --destructive: #e03131;
  --secondary: #868e96;
  --radius: 10px;
}
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, "Segoe UI", sans-serif; color: var(--fg); background: var(--bg); line-height: 1.6; }
a { color: var(--primary); text-decoration: none; }
.container { max-width: 1120px; margin: 0 auto; padding: 0 24px; }
.narrow { max-width: 880px; }
.page { padding-top: 32px; padding-bottom: 64px; }
.center { text-align: center; }
.muted { color: var(--muted); }
.lead { font-size: 1.2rem; color: var(--muted); }
.back { display: inline-block; color: var(--muted); margin-bottom: 16px; }

.site-header { border-bottom: 1px solid var(--border); background: rgba(255,255,255,0.9); position: sticky; top: 0; z-index: 20; }
.header-inner { display: flex; align-items: center; justify-content: space-between; height: 60px; }
.brand { font-weight: 700; font-size: 1.25rem; color: var(--fg); }
.site-nav a { margin-left: 20px; color: var(--muted); }

.hero { background: linear-gradient(135deg, var(--primary), var(--accent)); color: #fff; padding: 80px 0; text-align: center; }
.hero h1 { font-size: 3rem; margin: 0 0 12px; }
.hero h2 { font-weight: 300; margin: 0 0 16px; }
.features, .popular { padding: 64px 0; text-align: center; }
.features { background: var(--muted-bg); }
.cta { background: linear-gradient(135deg, var(--primary), var(--accent)); color: #fff; padding: 64px 0; text-align: center; }
.actions { display: flex; gap: 16px; justify-content: center; }

.grid { display: grid; gap: 24px; text-align: left; }
.grid-2 { grid-template-columns: repeat(auto-fill, minmax(420px, 1fr)); }
.grid-3 { grid-template-columns: repeat(auto-fill, minmax(300px, 1fr)); }

.card { border: 1px solid var(--border); border-radius: var(--radius); padding: 20px; background: #fff; }
.card-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 12px; }
.card-head h4 { margin: 0 0 8px; }
.stats { font-size: 0.85rem; color: var(--muted); }
.meta { display: flex; justify-content: space-between; margin: 12px 0; font-size: 0.9rem; }
.label { display: block; font-size: 0.75rem; color: var(--muted); }
.price { color: var(--success); }
.rating { color: var(--warning); font-weight: 600; margin-right: 8px; }
.dot { width: 12px; height: 12px; border-radius: 50%; flex-shrink: 0; margin-top: 6px; }
.bg-primary { background: var(--primary); }
.bg-accent { background: var(--accent); }
.bg-success { background: var(--success); }
.bg-warning { background: var(--warning); }
.bg-destructive { background: var(--destructive); }
.bg-secondary { background: var(--secondary); }
.badge { display: inline-block; padding: 2px 8px; border-radius: 999px; font-size: 0.75rem; background: var(--muted-bg); }
.badge-outline { background: transparent; border: 1px solid var(--border); }

.btn { display: inline-block; padding: 10px 18px; border-radius: 8px; border: 1px solid var(--border); background: var(--muted-bg); color: var(--fg); cursor: pointer; font: inherit; }
.btn-hero { background: var(--primary); color: var(--primary-fg); border-color: var(--primary); }
.btn-outline { background: transparent; color: inherit; border-color: currentColor; }
.btn-block { display: block; text-align: center; }
.btn-small { padding: 4px 10px; font-size: 0.8rem; }

.filters { display: flex; flex-direction: column; gap: 12px; margin-bottom: 24px; }
.filters input[type=search] { padding: 10px 12px; border: 1px solid var(--border); border-radius: 8px; font: inherit; }
.chips { display: flex; flex-wrap: wrap; gap: 8px; }
.chip { padding: 4px 12px; border: 1px solid var(--border); border-radius: 999px; color: var(--fg); font-size: 0.85rem; }
.chip.active { background: var(--primary); border-color: var(--primary); color: #fff; }
.empty { text-align: center; padding: 48px 0; }
.tip { margin-top: 48px; background: #f4f6ff; border-color: #d0d8ff; }

.course-layout { display: grid; grid-template-columns: 280px 1fr; gap: 32px; margin-top: 32px; }
.lesson-list ol { padding-left: 20px; }
.lesson-list .lesson-title { display: block; font-weight: 500; }
.lessons { display: flex; flex-direction: column; gap: 32px; }
.lesson header { display: flex; gap: 12px; align-items: center; }
.lesson header h3 { margin: 0; }
.lesson-number { width: 32px; height: 32px; border-radius: 50%; background: var(--primary); color: #fff; display: flex; align-items: center; justify-content: center; }
.prose pre { background: var(--muted-bg); padding: 12px; border-radius: 8px; overflow-x: auto; }
.prose blockquote { border-left: 3px solid var(--border); margin: 0; padding-left: 16px; color: var(--muted); }

.video { position: relative; padding-top: 56.25%; border-radius: var(--radius); overflow: hidden; background: var(--muted-bg); margin: 24px 0; }
.video iframe { position: absolute; inset: 0; width: 100%; height: 100%; }
.cta-inline { margin-top: 48px; }
.not-found { padding: 120px 0; }

.notice { position: fixed; bottom: 24px; left: 50%; transform: translateX(-50%); background: var(--fg); color: #fff; padding: 12px 20px; border-radius: 8px; z-index: 60; }

.ai-backdrop { position: fixed; inset: 0; background: rgba(15, 20, 30, 0.35); z-index: 40; }
.ai-modal { position: fixed; top: 50%; left: 50%; transform: translate(-50%, -50%); width: min(640px, 92vw); max-height: 80vh; overflow-y: auto; z-index: 50; box-shadow: 0 20px 50px rgba(0,0,0,0.2); }
.ai-modal .ai-head { display: flex; justify-content: space-between; align-items: center; margin-bottom: 12px; }
.ai-modal .ai-head h3 { margin: 0; font-size: 1.1rem; }
.ai-tag { font-size: 0.7rem; background: #efe9ff; color: var(--accent); padding: 2px 8px; border-radius: 999px; margin-left: 8px; }
.ai-selected { background: var(--muted-bg); border-radius: 8px; padding: 10px 12px; margin-bottom: 12px; }
.ai-followups { display: flex; flex-wrap: wrap; gap: 8px; }
.ai-answer { border-top: 1px solid var(--border); margin-top: 12px; padding-top: 12px; }
.ai-anchor { position: fixed; width: 10px; height: 10px; border-radius: 50%; background: var(--accent); z-index: 45; transform: translate(-50%, -120%); }
.spinner { display: inline-block; width: 18px; height: 18px; border: 2px solid var(--primary); border-top-color: transparent; border-radius: 50%; animation: spin 0.8s linear infinite; vertical-align: middle; margin-right: 8px; }
@keyframes spin { to { transform: rotate(360deg); } }
@media (max-width: 800px) { .course-layout { grid-template-columns: 1fr; } .grid-2 { grid-template-columns: 1fr; } }
`

// jsContent drives client-side navigation, page notices and the selection
// assistant. The assistant's state lives on the server; this script only
// forwards selection events and draws what the server sends back.
const jsContent = `(function() {
  var ws = null;
  var root = document.getElementById('ai-root');

  function clientNav() { return document.body.hasAttribute('data-client-nav'); }

  // ---- Notices ----
  var noticeTimer = null;
  function showNotice(text) {
    var el = document.getElementById('notice');
    el.textContent = text;
    el.hidden = false;
    clearTimeout(noticeTimer);
    noticeTimer = setTimeout(function() { el.hidden = true; }, 3000);
  }
  document.addEventListener('click', function(e) {
    var btn = e.target.closest('[data-notice]');
    if (btn) { showNotice(btn.getAttribute('data-notice')); }
  });

  // ---- Assistant overlay ----
  function send(msg) {
    if (ws && ws.readyState === WebSocket.OPEN) { ws.send(JSON.stringify(msg)); }
  }

  function onSelectionChange() {
    var sel = window.getSelection();
    var text = sel ? sel.toString() : '';
    var rect = null;
    if (sel && sel.rangeCount > 0) {
      var r = sel.getRangeAt(0).getBoundingClientRect();
      rect = { left: r.left, top: r.top, width: r.width, height: r.height };
    }
    send({ type: 'selection', text: text, rect: rect,
      viewport: { width: window.innerWidth, height: window.innerHeight } });
  }

  function el(tag, cls, text) {
    var n = document.createElement(tag);
    if (cls) { n.className = cls; }
    if (text) { n.textContent = text; }
    return n;
  }

  function button(label, cls, onClick) {
    var b = el('button', 'btn ' + cls, label);
    b.type = 'button';
    b.addEventListener('click', onClick);
    return b;
  }

  function render(state) {
    root.innerHTML = '';
    var m = state.modal;
    if (state.popup.visible && m.state === 'closed') {
      var dot = el('div', 'ai-anchor');
      dot.style.left = state.popup.anchor.x + 'px';
      dot.style.top = state.popup.anchor.y + 'px';
      root.appendChild(dot);
    }
    if (m.state === 'closed') { return; }

    var backdrop = el('div', 'ai-backdrop');
    backdrop.addEventListener('click', function() { send({ type: 'close' }); });
    root.appendChild(backdrop);

    var card = el('div', 'card ai-modal');
    // Keep the page selection alive while the visitor clicks inside the dialog.
    card.addEventListener('mousedown', function(e) { e.preventDefault(); });

    var head = el('div', 'ai-head');
    var title = el('h3', '', 'AI Learning Assistant');
    title.appendChild(el('span', 'ai-tag', 'Demo Only'));
    head.appendChild(title);
    head.appendChild(button('×', 'btn-small', function() { send({ type: 'close' }); }));
    card.appendChild(head);

    var selected = el('div', 'ai-selected');
    selected.appendChild(el('div', 'muted', 'Selected text:'));
    selected.appendChild(el('strong', '', '"' + m.selected_text + '"'));
    card.appendChild(selected);

    if (m.state === 'loading' || m.state === 'loading_follow_up') {
      var loading = el('p', 'muted');
      loading.appendChild(el('span', 'spinner'));
      loading.appendChild(document.createTextNode('AI is analyzing your selection...'));
      card.appendChild(loading);
    } else {
      if (m.explanation) { card.appendChild(el('p', '', m.explanation)); }
      if (m.state === 'showing_explanation' && m.follow_ups) {
        card.appendChild(el('p', 'muted', 'Want to learn more?'));
        var list = el('div', 'ai-followups');
        m.follow_ups.forEach(function(label) {
          list.appendChild(button(label, 'btn-small', function() { send({ type: 'follow_up', label: label }); }));
        });
        card.appendChild(list);
      }
      if (m.state === 'showing_follow_up') {
        var answer = el('div', 'ai-answer');
        answer.appendChild(el('p', '', m.follow_up_answer));
        answer.appendChild(button('Ask another question', 'btn-small', function() { send({ type: 'ask_another' }); }));
        card.appendChild(answer);
      }
    }
    root.appendChild(card);
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    ws = new WebSocket(proto + location.host + '/ws/overlay');
    ws.onmessage = function(ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'state') { render(msg); }
      else if (msg.type === 'clear_selection') { var s = window.getSelection(); if (s) { s.removeAllRanges(); } }
      else if (msg.type === 'error') { console.warn('assistant:', msg.content); }
    };
    document.addEventListener('selectionchange', onSelectionChange);
  }

  function disconnect() {
    document.removeEventListener('selectionchange', onSelectionChange);
    if (ws) { ws.close(); ws = null; }
    root.innerHTML = '';
  }

  function syncOverlay() {
    var main = document.getElementById('main');
    var wanted = main && main.hasAttribute('data-overlay');
    if (wanted && !ws) { connect(); }
    if (!wanted && ws) { disconnect(); }
  }

  // ---- Client-side navigation ----
  function load(href, push) {
    fetch(href, { headers: { 'X-Requested-With': 'learnhub' } })
      .then(function(res) { return res.text(); })
      .then(function(html) {
        var doc = new DOMParser().parseFromString(html, 'text/html');
        var next = doc.getElementById('main');
        if (!next) { location.href = href; return; }
        disconnect();
        document.getElementById('main').replaceWith(next);
        document.title = next.getAttribute('data-title') || document.title;
        if (push) { history.pushState({}, '', href); }
        window.scrollTo(0, 0);
        syncOverlay();
      })
      .catch(function() { location.href = href; });
  }

  document.addEventListener('click', function(e) {
    if (!clientNav() || e.defaultPrevented || e.button !== 0 || e.metaKey || e.ctrlKey || e.shiftKey) { return; }
    var a = e.target.closest('a[data-nav]');
    if (!a) { return; }
    e.preventDefault();
    load(a.getAttribute('href'), true);
  });

  document.addEventListener('submit', function(e) {
    if (!clientNav()) { return; }
    var form = e.target;
    if (form.method.toLowerCase() !== 'get') { return; }
    e.preventDefault();
    var params = new URLSearchParams(new FormData(form)).toString();
    load(form.getAttribute('action') + (params ? '?' + params : ''), true);
  });

  window.addEventListener('popstate', function() { load(location.pathname + location.search, false); });

  syncOverlay();
})();
`
